package render

// booleanAttrs render as a bare name when true and are omitted when false.
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"checked":   true,
	"disabled":  true,
	"hidden":    true,
	"readonly":  true,
	"required":  true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
