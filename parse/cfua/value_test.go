package cfua

import (
	"math"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDocument(t *testing.T) {
	convey.Convey("document append and lookup", t, func() {
		doc := New()
		doc.AppendBoolean("is-cfua", true)
		doc.AppendString("purpose", "Testing builder functions")
		doc.AppendInteger("dup", 1)
		doc.AppendString("dup", "second")
		doc.AppendSection("extra")

		convey.Convey("pairs keep insertion order including duplicates", func() {
			pairs := doc.Pairs()
			convey.So(pairs, convey.ShouldHaveLength, 5)
			keys := make([]string, 0, len(pairs))
			for k := range doc.All() {
				keys = append(keys, k)
			}
			convey.So(keys, convey.ShouldResemble, []string{"is-cfua", "purpose", "dup", "dup", "extra"})
		})

		convey.Convey("lookup is type directed and uses the first key match", func() {
			i, ok := doc.GetInteger("dup")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(i, convey.ShouldEqual, 1)

			_, ok = doc.GetString("dup")
			convey.So(ok, convey.ShouldBeFalse)
			_, ok = doc.GetFloat("purpose")
			convey.So(ok, convey.ShouldBeFalse)
			_, ok = doc.GetArray("missing")
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(doc.HasSection("extra"), convey.ShouldBeTrue)
			convey.So(doc.HasSection("purpose"), convey.ShouldBeFalse)
		})

		convey.Convey("Pairs returns a copy", func() {
			pairs := doc.Pairs()
			pairs[0].Key = "changed"
			convey.So(doc.Pairs()[0].Key, convey.ShouldEqual, "is-cfua")
		})

		convey.Convey("iteration can stop early", func() {
			n := 0
			for range doc.All() {
				n++
				if n == 2 {
					break
				}
			}
			convey.So(n, convey.ShouldEqual, 2)
		})
	})
}

func TestEquality(t *testing.T) {
	convey.Convey("structural equality", t, func() {
		a := New()
		a.AppendFloat("x", math.NaN())
		a.AppendArray("arr", NewFloatArray().Push(math.NaN()).Push(1))
		b := New()
		b.AppendFloat("x", math.NaN())
		b.AppendArray("arr", NewFloatArray().Push(math.NaN()).Push(1))
		convey.So(a.Equal(b), convey.ShouldBeTrue)

		b.AppendSection("more")
		convey.So(a.Equal(b), convey.ShouldBeFalse)

		convey.So(Integer(1).Equal(Float(1)), convey.ShouldBeFalse)
		convey.So(String("a").Equal(String("b")), convey.ShouldBeFalse)
		convey.So(Array(Integer(1)).Equal(Array(Integer(1), Integer(2))), convey.ShouldBeFalse)
		convey.So(Section().Equal(Section()), convey.ShouldBeTrue)

		var nilDoc *Document
		convey.So(nilDoc.Equal(nil), convey.ShouldBeTrue)
		convey.So(a.Equal(nil), convey.ShouldBeFalse)
	})
}

func TestArrayBuilders(t *testing.T) {
	convey.Convey("builders produce homogeneous arrays", t, func() {
		ints := NewIntegerArray().Push(1).Push(2).Push(4)
		convey.So(ints.Len(), convey.ShouldEqual, 3)
		v := ints.Finish()
		convey.So(v.Type(), convey.ShouldEqual, TypeArray)
		convey.So(v.Equal(Array(Integer(1), Integer(2), Integer(4))), convey.ShouldBeTrue)

		strs := NewStringArray().Push("a").Finish()
		elems, ok := strs.AsArray()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(elems[0].Type(), convey.ShouldEqual, TypeString)

		bools := NewBooleanArray().Push(true).Finish()
		convey.So(bools.String(), convey.ShouldEqual, "[true]")

		floats := NewArray[float64]().Push(0.25).Finish()
		convey.So(floats.String(), convey.ShouldEqual, "[0.25]")
	})

	convey.Convey("Finish snapshots the builder", t, func() {
		b := NewIntegerArray().Push(1)
		first := b.Finish()
		b.Push(2)
		elems, _ := first.AsArray()
		convey.So(elems, convey.ShouldHaveLength, 1)
	})
}

func TestValueString(t *testing.T) {
	convey.Convey("display text", t, func() {
		convey.So(Integer(-7).String(), convey.ShouldEqual, "-7")
		convey.So(Float(3).String(), convey.ShouldEqual, "3.0")
		convey.So(Float(math.Inf(1)).String(), convey.ShouldEqual, "inf")
		convey.So(String("raw text").String(), convey.ShouldEqual, "raw text")
		convey.So(Array(String("a"), String("b")).String(), convey.ShouldEqual, `["a", "b"]`)
		convey.So(TypeSection.String(), convey.ShouldEqual, "section")
		convey.So(Value{}.String(), convey.ShouldEqual, "<invalid>")
	})
}
