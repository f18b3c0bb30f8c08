package catalog

// Implementations of the list operators. Unlike the regular operators these
// see their arguments whole, because what they do is about the shape of the
// list and not its elements; a scalar argument is treated as a list of one.

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"src.elv.sh/pkg/persistent/vector"

	"rpn/source/values"
)

func asVector(v values.Value) vector.Vector {
	if v.T == values.LIST {
		return v.V.(vector.Vector)
	}
	return vector.Empty.Conj(v)
}

func elements(v values.Value) []values.Value {
	return values.Elements(v)
}

func numbers(name string, v values.Value) ([]decimal.Decimal, error) {
	els := elements(v)
	result := make([]decimal.Decimal, len(els))
	for i, el := range els {
		d, e := wantNumber(name, el)
		if e != nil {
			return nil, e
		}
		result[i] = d
	}
	return result, nil
}

func listOf(els []values.Value) values.Value {
	vec := vector.Empty
	for _, el := range els {
		vec = vec.Conj(el)
	}
	return values.MakeList(vec)
}

func listOfNumbers(ds []decimal.Decimal) values.Value {
	vec := vector.Empty
	for _, d := range ds {
		vec = vec.Conj(values.MakeNumber(d))
	}
	return values.MakeList(vec)
}

// numericListOp adapts a decimals-in, decimal-out function; the reductions
// (sum, product, mean...) are all of this shape.
func numericListOp(name string, f func(ds []decimal.Decimal) (decimal.Decimal, error)) OperatorFn {
	return func(env Env, args []values.Value) (values.Value, error) {
		ds, e := numbers(name, args[0])
		if e != nil {
			return values.Value{}, e
		}
		result, e := f(ds)
		if e != nil {
			return values.Value{}, e
		}
		return values.MakeNumber(result), nil
	}
}

func getSum(ds []decimal.Decimal) (decimal.Decimal, error) {
	result := decimal.Zero
	for _, d := range ds {
		result = result.Add(d)
	}
	return result, nil
}

func getProduct(ds []decimal.Decimal) (decimal.Decimal, error) {
	result := one
	for _, d := range ds {
		result = result.Mul(d)
	}
	return result, nil
}

func getMean(ds []decimal.Decimal) (decimal.Decimal, error) {
	if len(ds) == 0 {
		return decimal.Zero, errors.New("'mean' of an empty list")
	}
	total, _ := getSum(ds)
	return total.Div(decimal.NewFromInt(int64(len(ds)))), nil
}

func getStandardDeviation(ds []decimal.Decimal) (decimal.Decimal, error) {
	if len(ds) == 0 {
		return decimal.Zero, errors.New("'stddev' of an empty list")
	}
	mean, _ := getMean(ds)
	variance := decimal.Zero
	for _, d := range ds {
		diff := d.Sub(mean)
		variance = variance.Add(diff.Mul(diff))
	}
	variance = variance.Div(decimal.NewFromInt(int64(len(ds))))
	x, _ := variance.Float64()
	return decimal.NewFromFloat(math.Sqrt(x)), nil
}

func getMin(ds []decimal.Decimal) (decimal.Decimal, error) {
	if len(ds) == 0 {
		return decimal.Zero, errors.New("'min' of an empty list")
	}
	result := ds[0]
	for _, d := range ds[1:] {
		if d.LessThan(result) {
			result = d
		}
	}
	return result, nil
}

func getMax(ds []decimal.Decimal) (decimal.Decimal, error) {
	if len(ds) == 0 {
		return decimal.Zero, errors.New("'max' of an empty list")
	}
	result := ds[0]
	for _, d := range ds[1:] {
		if d.GreaterThan(result) {
			result = d
		}
	}
	return result, nil
}

// getAlternatingSum is a - b + c - d ...
func getAlternatingSum(ds []decimal.Decimal) (decimal.Decimal, error) {
	result := decimal.Zero
	for i, d := range ds {
		if i%2 == 0 {
			result = result.Add(d)
		} else {
			result = result.Sub(d)
		}
	}
	return result, nil
}

func getGCD(ds []decimal.Decimal) (decimal.Decimal, error) {
	result := decimal.Zero
	for _, d := range ds {
		if !d.Equal(d.Truncate(0)) {
			return decimal.Zero, errors.New("'gcd' expects integers")
		}
		result = gcd(result.Abs(), d.Abs())
	}
	return result, nil
}

func gcd(a, b decimal.Decimal) decimal.Decimal {
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}

func countElements(env Env, args []values.Value) (values.Value, error) {
	return values.MakeNumber(decimal.NewFromInt(int64(asVector(args[0]).Len()))), nil
}

func getReverse(env Env, args []values.Value) (values.Value, error) {
	els := elements(args[0])
	for i, j := 0, len(els)-1; i < j; i, j = i+1, j-1 {
		els[i], els[j] = els[j], els[i]
	}
	return listOf(els), nil
}

func sortList(descending bool) OperatorFn {
	name := "sort"
	if descending {
		name = "sortdesc"
	}
	return func(env Env, args []values.Value) (values.Value, error) {
		ds, e := numbers(name, args[0])
		if e != nil {
			return values.Value{}, e
		}
		sort.Slice(ds, func(i, j int) bool {
			if descending {
				return ds[j].LessThan(ds[i])
			}
			return ds[i].LessThan(ds[j])
		})
		return listOfNumbers(ds), nil
	}
}

func getUniqueElements(env Env, args []values.Value) (values.Value, error) {
	els := elements(args[0])
	unique := []values.Value{}
	for _, el := range els {
		seen := false
		for _, kept := range unique {
			if values.Equals(el, kept) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, el)
		}
	}
	return listOf(unique), nil
}

func appendLists(env Env, args []values.Value) (values.Value, error) {
	return listOf(append(elements(args[0]), elements(args[1])...)), nil
}

func interleave(env Env, args []values.Value) (values.Value, error) {
	first, second := elements(args[0]), elements(args[1])
	length := len(first)
	if len(second) < length {
		length = len(second)
	}
	result := []values.Value{}
	for i := 0; i < length; i++ {
		result = append(result, first[i], second[i])
	}
	return listOf(result), nil
}

// getListDiffs returns the list of differences between successive elements.
func getListDiffs(env Env, args []values.Value) (values.Value, error) {
	ds, e := numbers("diffs", args[0])
	if e != nil {
		return values.Value{}, e
	}
	diffs := []decimal.Decimal{}
	for i := 1; i < len(ds); i++ {
		diffs = append(diffs, ds[i].Sub(ds[i-1]))
	}
	return listOfNumbers(diffs), nil
}

func alternateSigns(env Env, args []values.Value) (values.Value, error) {
	ds, e := numbers("altsign", args[0])
	if e != nil {
		return values.Value{}, e
	}
	for i := range ds {
		if i%2 == 1 {
			ds[i] = ds[i].Neg()
		}
	}
	return listOfNumbers(ds), nil
}

func indicesWhere(name string, zero bool) OperatorFn {
	return func(env Env, args []values.Value) (values.Value, error) {
		ds, e := numbers(name, args[0])
		if e != nil {
			return values.Value{}, e
		}
		indices := []decimal.Decimal{}
		for i, d := range ds {
			if d.IsZero() == zero {
				indices = append(indices, decimal.NewFromInt(int64(i)))
			}
		}
		return listOfNumbers(indices), nil
	}
}

// getListElement indexes a list from zero.
func getListElement(env Env, args []values.Value) (values.Value, error) {
	els := elements(args[0])
	index, e := wantInteger("element", args[1])
	if e != nil {
		return values.Value{}, e
	}
	i := index.IntPart()
	if i < 0 || i >= int64(len(els)) {
		return values.Value{}, fmt.Errorf("index %v out of range for a list of %v", i, len(els))
	}
	return els[i], nil
}

// expandRange counts from a to b inclusive, in whichever direction b lies.
func expandRange(env Env, args []values.Value) (values.Value, error) {
	from, e := wantInteger("range", args[0])
	if e != nil {
		return values.Value{}, e
	}
	to, e := wantInteger("range", args[1])
	if e != nil {
		return values.Value{}, e
	}
	step := one
	if to.LessThan(from) {
		step = one.Neg()
	}
	result := []decimal.Decimal{}
	for k := from; ; k = k.Add(step) {
		result = append(result, k)
		if k.Equal(to) {
			break
		}
	}
	return listOfNumbers(result), nil
}
