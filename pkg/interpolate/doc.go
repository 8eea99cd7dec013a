// Package interpolate renders message templates by replacing `{token}`
// placeholders with values from a token map.
//
// Tokens are any run of characters other than braces enclosed in a single pair
// of curly braces, so both named tokens (`{field}`, `{title}`) and positional
// numeric tokens (`{0}`, `{1}`) are supported. Placeholders whose token has no
// entry in the map are left untouched, which keeps partially rendered templates
// readable and makes missing tokens easy to spot in tests.
//
// # Usage
//
//	msg := interpolate.Render("{title} must be at least {0}", map[string]string{
//	    "title": "Age",
//	    "0":     "18",
//	})
//	// msg == "Age must be at least 18"
package interpolate
