package catalog

// The builtin catalog. The full calculator this grew out of had thousands of
// operators; this is the working set that exercises every kind the evaluator
// knows about. Adding one is a matter of adding a line to the right table.

import (
	"math"

	"github.com/shopspring/decimal"
)

// functionOperators is the list of operators that terminate the function
// creation state.
var functionOperators = []string{
	"eval",
	"eval2",
	"eval3",
	"filter",
	"limit",
	"limitn",
	"nprod",
	"nsum",
}

// operatorAliases maps the spellings everyone actually types to the canonical
// operator names.
var operatorAliases = map[string]string{
	"!":         "factorial",
	"%":         "modulo",
	"*":         "multiply",
	"**":        "power",
	"+":         "add",
	"-":         "subtract",
	"/":         "divide",
	"1/x":       "reciprocal",
	"^":         "power",
	"accuracy":  "precision",
	"average":   "mean",
	"avg":       "mean",
	"cbrt":      "root3",
	"ceil":      "ceiling",
	"cuberoot":  "root3",
	"fac":       "factorial",
	"fib":       "fibonacci",
	"inv":       "reciprocal",
	"isdiv":     "isdivisible",
	"log":       "ln",
	"mod":       "modulo",
	"mult":      "multiply",
	"neg":       "negative",
	"nonzeroes": "nonzero",
	"prod":      "product",
	"root2":     "sqrt",
	"sqr":       "square",
	"zeroes":    "zero",
}

// Builtins makes the standard catalog. Each call returns a fresh one, so a
// host that wants to extend it can do so before first use without affecting
// anyone else.
func Builtins() *Catalog {
	operators := map[string]Info{

		// Modifiers operate on the stack directly; the evaluator owns their
		// handlers and the catalog just classifies the names.

		"[":        {nil, 0, Modifier},
		"]":        {nil, 0, Modifier},
		"dup":      {nil, 2, Modifier},
		"flatten":  {nil, 1, Modifier},
		"previous": {nil, 1, Modifier},
		"unlist":   {nil, 1, Modifier},
		"x":        {nil, 0, Modifier},
		"y":        {nil, 0, Modifier},
		"z":        {nil, 0, Modifier},

		// Regular operators expect single values; if their arguments are
		// lists, the broadcaster iterates for them.

		"abs":        {numericOp("abs", func(a []decimal.Decimal) (decimal.Decimal, error) { return a[0].Abs(), nil }), 1, Operator},
		"add":        {numericOp("add", add), 2, Operator},
		"ceiling":    {numericOp("ceiling", func(a []decimal.Decimal) (decimal.Decimal, error) { return a[0].Ceil(), nil }), 1, Operator},
		"cos":        {floatOp("cos", func(x float64) (float64, error) { return math.Cos(x), nil }), 1, Operator},
		"cube":       {numericOp("cube", func(a []decimal.Decimal) (decimal.Decimal, error) { return a[0].Pow(decimal.NewFromInt(3)), nil }), 1, Operator},
		"divide":     {numericOp("divide", divide), 2, Operator},
		"e":          {constantOp(ee), 0, Operator},
		"equal":      {numericOp("equal", func(a []decimal.Decimal) (decimal.Decimal, error) { return truthDecimal(a[0].Equal(a[1])), nil }), 2, Operator},
		"eval":       {evaluateFunction("eval"), 2, Operator},
		"eval2":      {evaluateFunction("eval2"), 3, Operator},
		"eval3":      {evaluateFunction("eval3"), 4, Operator},
		"exp":        {floatOp("exp", func(x float64) (float64, error) { return math.Exp(x), nil }), 1, Operator},
		"factorial":  {numericOp("factorial", factorial), 1, Operator},
		"fibonacci":  {numericOp("fibonacci", fibonacci), 1, Operator},
		"floor":      {numericOp("floor", func(a []decimal.Decimal) (decimal.Decimal, error) { return a[0].Floor(), nil }), 1, Operator},
		"greater":    {numericOp("greater", func(a []decimal.Decimal) (decimal.Decimal, error) { return truthDecimal(a[0].GreaterThan(a[1])), nil }), 2, Operator},
		"isdivisible": {numericOp("isdivisible", isDivisible), 2, Operator},
		"less":       {numericOp("less", func(a []decimal.Decimal) (decimal.Decimal, error) { return truthDecimal(a[0].LessThan(a[1])), nil }), 2, Operator},
		"limit":      {limitAt("limit", true), 2, Operator},
		"limitn":     {limitAt("limitn", false), 2, Operator},
		"ln":         {floatOp("ln", func(x float64) (float64, error) { return math.Log(x), nil }), 1, Operator},
		"log10":      {floatOp("log10", func(x float64) (float64, error) { return math.Log10(x), nil }), 1, Operator},
		"log2":       {floatOp("log2", func(x float64) (float64, error) { return math.Log2(x), nil }), 1, Operator},
		"modulo":     {numericOp("modulo", modulo), 2, Operator},
		"multiply":   {numericOp("multiply", multiply), 2, Operator},
		"negative":   {numericOp("negative", func(a []decimal.Decimal) (decimal.Decimal, error) { return a[0].Neg(), nil }), 1, Operator},
		"nprod":      {reduceOverRange("nprod", one, func(acc, next decimal.Decimal) decimal.Decimal { return acc.Mul(next) }), 3, Operator},
		"nsum":       {reduceOverRange("nsum", decimal.Zero, func(acc, next decimal.Decimal) decimal.Decimal { return acc.Add(next) }), 3, Operator},
		"phi":        {constantOp(phi), 0, Operator},
		"pi":         {constantOp(pi), 0, Operator},
		"power":      {numericOp("power", exponentiate), 2, Operator},
		"reciprocal": {numericOp("reciprocal", reciprocal), 1, Operator},
		"root3":      {floatOp("root3", func(x float64) (float64, error) { return math.Cbrt(x), nil }), 1, Operator},
		"round":      {numericOp("round", func(a []decimal.Decimal) (decimal.Decimal, error) { return a[0].Round(0), nil }), 1, Operator},
		"set":        {setVariable, 2, Operator},
		"sin":        {floatOp("sin", func(x float64) (float64, error) { return math.Sin(x), nil }), 1, Operator},
		"sqrt":       {floatOp("sqrt", func(x float64) (float64, error) { return math.Sqrt(x), nil }), 1, Operator},
		"square":     {numericOp("square", func(a []decimal.Decimal) (decimal.Decimal, error) { return a[0].Mul(a[0]), nil }), 1, Operator},
		"subtract":   {numericOp("subtract", subtract), 2, Operator},
		"tan":        {floatOp("tan", func(x float64) (float64, error) { return math.Tan(x), nil }), 1, Operator},

		// Settings operators adjust the shared Config and return the setting
		// now in force. The original kept these in module-level globals; here
		// they reach the Config through the Env.

		"comma":            {settingOp("comma", func(env Env, n decimal.Decimal) decimal.Decimal { env.Config().Comma = !n.IsZero(); return truthDecimal(env.Config().Comma) }), 1, Operator},
		"decimal_grouping": {settingOp("decimal_grouping", func(env Env, n decimal.Decimal) decimal.Decimal { env.Config().DecimalGrouping = clampSetting(n); return decimal.NewFromInt(int64(env.Config().DecimalGrouping)) }), 1, Operator},
		"input_radix":      {settingOp("input_radix", func(env Env, n decimal.Decimal) decimal.Decimal { return decimal.NewFromInt(int64(env.Config().SetInputRadix(int(n.IntPart())))) }), 1, Operator},
		"integer_grouping": {settingOp("integer_grouping", func(env Env, n decimal.Decimal) decimal.Decimal { env.Config().IntegerGrouping = clampSetting(n); return decimal.NewFromInt(int64(env.Config().IntegerGrouping)) }), 1, Operator},
		"leading_zero":     {settingOp("leading_zero", func(env Env, n decimal.Decimal) decimal.Decimal { env.Config().LeadingZero = !n.IsZero(); return truthDecimal(env.Config().LeadingZero) }), 1, Operator},
		"output_radix":     {settingOp("output_radix", func(env Env, n decimal.Decimal) decimal.Decimal { return decimal.NewFromInt(int64(env.Config().SetOutputRadix(int(n.IntPart())))) }), 1, Operator},
		"precision":        {settingOp("precision", func(env Env, n decimal.Decimal) decimal.Decimal { return decimal.NewFromInt(int64(env.Config().SetPrecision(int(n.IntPart())))) }), 1, Operator},

		// List operators handle whether or not an argument is a list
		// themselves, because they require a list argument. They are never
		// broadcast over elements.

		"altsign":    {alternateSigns, 1, ListOperator},
		"altsum":     {numericListOp("altsum", getAlternatingSum), 1, ListOperator},
		"append":     {appendLists, 2, ListOperator},
		"count":      {countElements, 1, ListOperator},
		"diffs":      {getListDiffs, 1, ListOperator},
		"element":    {getListElement, 2, ListOperator},
		"filter":     {filterList, 2, ListOperator},
		"gcd":        {numericListOp("gcd", getGCD), 1, ListOperator},
		"interleave": {interleave, 2, ListOperator},
		"max":        {numericListOp("max", getMax), 1, ListOperator},
		"mean":       {numericListOp("mean", getMean), 1, ListOperator},
		"min":        {numericListOp("min", getMin), 1, ListOperator},
		"nonzero":    {indicesWhere("nonzero", false), 1, ListOperator},
		"product":    {numericListOp("product", getProduct), 1, ListOperator},
		"range":      {expandRange, 2, ListOperator},
		"reverse":    {getReverse, 1, ListOperator},
		"sort":       {sortList(false), 1, ListOperator},
		"sortdesc":   {sortList(true), 1, ListOperator},
		"stddev":     {numericListOp("stddev", getStandardDeviation), 1, ListOperator},
		"sum":        {numericListOp("sum", getSum), 1, ListOperator},
		"unique":     {getUniqueElements, 1, ListOperator},
		"zero":       {indicesWhere("zero", true), 1, ListOperator},
	}
	return New(operators, operatorAliases, functionOperators)
}

func truthDecimal(b bool) decimal.Decimal {
	if b {
		return one
	}
	return decimal.Zero
}

func clampSetting(n decimal.Decimal) int {
	if n.IsNegative() {
		return 0
	}
	return int(n.IntPart())
}
