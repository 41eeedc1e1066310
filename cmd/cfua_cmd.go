package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/dzjyyds666/cfua/parse"
	"github.com/dzjyyds666/cfua/parse/cfua"
	"github.com/spf13/cobra"
)

type CfuaParams struct {
	Find   string `json:"find"`   // 查找的key
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	Strict bool   `json:"strict"` // 文件末尾必须以换行结束
}

var params *CfuaParams

var (
	errNoInput      = errors.New("no input file path")
	errFindAndWrite = errors.New("--find cannot be combined with --output")
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "list the pairs of a cfua file or look up one key",
	RunE:  readRun,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "rewrite a cfua file in canonical form",
	RunE:  fmtRun,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "validate a cfua file",
	RunE:  checkRun,
}

func init() {
	params = &CfuaParams{}
	readCmd.Flags().StringVarP(&params.Find, "find", "f", "", "key to look up")
	for _, c := range []*cobra.Command{readCmd, fmtCmd, checkCmd} {
		c.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
		c.Flags().BoolVar(&params.Strict, "strict", false, "require a trailing newline")
	}
	readCmd.Flags().StringVarP(&params.Output, "output", "o", "", "write the canonical document to this path")
	fmtCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path, stdout when empty")
}

func load() (*cfua.Document, error) {
	if len(params.Input) == 0 {
		return nil, errNoInput
	}
	var opts []cfua.Option
	if params.Strict {
		opts = append(opts, cfua.WithStrictEOF())
	}
	return parse.LoadFile(params.Input, opts...)
}

func readRun(cmd *cobra.Command, args []string) error {
	if len(params.Find) > 0 && len(params.Output) > 0 {
		return errFindAndWrite
	}
	doc, err := load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(params.Find) > 0 {
		for key, v := range doc.All() {
			if key == params.Find {
				printValue(out, key, v)
				return nil
			}
		}
		return fmt.Errorf("key %q not found", params.Find)
	}

	for key, v := range doc.All() {
		printValue(out, key, v)
	}
	if len(params.Output) > 0 {
		return parse.SaveFile(params.Output, doc)
	}
	return nil
}

func printValue(w io.Writer, key string, v cfua.Value) {
	if v.Type() == cfua.TypeSection {
		fmt.Fprintf(w, "@%s\n", key)
		return
	}
	fmt.Fprintf(w, "%s (%s) = %s\n", key, v.Type(), v)
}

func fmtRun(cmd *cobra.Command, args []string) error {
	doc, err := load()
	if err != nil {
		return err
	}
	if len(params.Output) > 0 {
		return parse.SaveFile(params.Output, doc)
	}
	_, err = doc.WriteTo(cmd.OutOrStdout())
	return err
}

func checkRun(cmd *cobra.Command, args []string) error {
	doc, err := load()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d pairs\n", params.Input, doc.Len())
	return nil
}
