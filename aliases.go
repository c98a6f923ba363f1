package stringcalc

// Legacy string-type shorthands accepted in string specs and type sets, and
// the canonical catalog group id each one stands for. The shorthand path is
// flagged with a warning; canonical ids pass through untouched.
var typeAliases = map[string]string{
	"S":  "PL", // plain steel
	"PS": "PL",
	"N":  "NYL", // plain "rectified" nylon
	"NW": "NYLW", // silver-wrapped nylon
}

// TypeAliases returns a copy of the legacy-shorthand alias table, mapping
// each accepted shorthand to its canonical catalog group id.
func TypeAliases() map[string]string {
	out := make(map[string]string, len(typeAliases))
	for k, v := range typeAliases {
		out[k] = v
	}
	return out
}
