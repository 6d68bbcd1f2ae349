package modulus

// Built-in weighting table. Entries are ordered; a sort code may fall in
// more than one range, in which case the session's combination policy
// reconciles the per-rule outcomes. The table is data only: a deployment
// tracking a newer issue of the published document replaces this slice.
var builtinRules = []Rule{
	{Start: 10004, End: 16715, Method: Mod11, Exception: 0,
		SortWeights: mustDigits("000000"), AcctWeights: mustDigits("87654321")},
	{Start: 80000, End: 89999, Method: Mod10, Exception: 0,
		SortWeights: mustDigits("713713"), AcctWeights: mustDigits("71371371")},
	{Start: 90000, End: 90999, Method: Mod10, Exception: 8,
		SortWeights: mustDigits("734921"), AcctWeights: mustDigits("00000210")},
	{Start: 100000, End: 109999, Method: DblAl, Exception: 0,
		SortWeights: mustDigits("212121"), AcctWeights: mustDigits("21212121")},
	{Start: 117000, End: 119999, Method: DblAl, Exception: 1,
		SortWeights: mustDigits("212121"), AcctWeights: mustDigits("21212121")},
	{Start: 134000, End: 134999, Method: Mod11, Exception: 4,
		SortWeights: mustDigits("000000"), AcctWeights: mustDigits("00456700")},
	{Start: 180000, End: 189999, Method: Mod11, Exception: 14,
		SortWeights: mustDigits("000000"), AcctWeights: mustDigits("00000021")},
	{Start: 200000, End: 205999, Method: DblAl, Exception: 6,
		SortWeights: mustDigits("212121"), AcctWeights: mustDigits("21212121")},
	{Start: 200000, End: 205999, Method: DblAl, Exception: 6,
		SortWeights: mustDigits("121212"), AcctWeights: mustDigits("12121212")},
	{Start: 309634, End: 309899, Method: Mod11, Exception: 2,
		SortWeights: mustDigits("001253"), AcctWeights: mustList("6,4,8,7,10,9,3,1")},
	{Start: 309634, End: 309899, Method: Mod11, Exception: 9,
		SortWeights: mustDigits("001253"), AcctWeights: mustList("6,4,8,7,10,9,3,1")},
	{Start: 772000, End: 772999, Method: Mod11, Exception: 7,
		SortWeights: mustDigits("000000"), AcctWeights: mustList("2,1,8,7,10,9,3,1")},
	{Start: 774100, End: 774599, Method: Mod11, Exception: 12,
		SortWeights: mustDigits("100532"), AcctWeights: mustList("6,4,8,7,10,9,3,1")},
	{Start: 774100, End: 774599, Method: Mod10, Exception: 13,
		SortWeights: mustDigits("100532"), AcctWeights: mustList("6,4,8,7,10,9,3,1")},
	{Start: 820000, End: 826917, Method: Mod11, Exception: 0,
		SortWeights: mustDigits("765432"), AcctWeights: mustDigits("76543210")},
	{Start: 820000, End: 826917, Method: DblAl, Exception: 3,
		SortWeights: mustDigits("212121"), AcctWeights: mustDigits("21212121")},
	{Start: 871400, End: 871999, Method: Mod11, Exception: 10,
		SortWeights: mustDigits("001253"), AcctWeights: mustList("6,4,8,7,10,9,3,1")},
	{Start: 871400, End: 871999, Method: Mod10, Exception: 11,
		SortWeights: mustDigits("001253"), AcctWeights: mustList("6,4,8,7,10,9,3,1")},
	{Start: 938000, End: 938696, Method: Mod11, Exception: 5,
		SortWeights: mustDigits("765432"), AcctWeights: mustDigits("76543200")},
	{Start: 938000, End: 938696, Method: DblAl, Exception: 5,
		SortWeights: mustDigits("212121"), AcctWeights: mustDigits("21212120")},
}

// sortCodeSubstitutions maps sort codes that exception 5 redirects to a
// substitute before the checksum runs.
var sortCodeSubstitutions = map[string]string{
	"938173": "938017",
	"938289": "938068",
	"938297": "938076",
	"938600": "938611",
	"938602": "938343",
	"938604": "938603",
	"938608": "938408",
	"938620": "938343",
}

// DefaultTable returns the built-in rule table. The table is immutable and
// safe to share across concurrent sessions.
func DefaultTable() *Table {
	t, err := NewTable(builtinRules)
	if err != nil {
		panic("modulus: built-in table invalid: " + err.Error())
	}
	return t
}
