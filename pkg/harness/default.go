package harness

func intCase(label string, expr any, want int) Case {
	return Case{Label: label, Decode: DecodeInt, Expr: expr, Want: want}
}

func boolCase(label string, expr any, want bool) Case {
	return Case{Label: label, Decode: DecodeBool, Expr: expr, Want: want}
}

func app(items ...any) []any { return items }

// DefaultSuite is the built-in check list run by the CLI when no file is given.
func DefaultSuite() *Suite {
	identity := map[string]any{"lambda": "x", "body": "x"}
	return &Suite{
		Name: "church",
		Cases: []Case{
			intCase("IDENTITY #9", app(identity, 9), 9),
			intCase("NEXT #7", app("NEXT", 7), 8),
			intCase("PRE #7", app("PRE", 7), 6),
			boolCase("ISZERO #0", app("ISZERO", 0), true),
			boolCase("ISZERO #3", app("ISZERO", 3), false),
			intCase("IF TRUE #4 #5", app("IF", "TRUE", 4, 5), 4),
			intCase("IF FALSE #4 #5", app("IF", "FALSE", 4, 5), 5),
			intCase("IF (EQ #3 #3) #4 #5", app("IF", app("EQ", 3, 3), 4, 5), 4),
			boolCase("NOT TRUE", app("NOT", "TRUE"), false),
			boolCase("AND TRUE FALSE", app("AND", "TRUE", "FALSE"), false),
			boolCase("OR FALSE TRUE", app("OR", "FALSE", "TRUE"), true),
			boolCase("LEQ #2 #4", app("LEQ", 2, 4), true),
			boolCase("LEQ #4 #4", app("LEQ", 4, 4), true),
			boolCase("LEQ #5 #4", app("LEQ", 5, 4), false),
			boolCase("EQ #3 #4", app("EQ", 3, 4), false),
			boolCase("EQ #4 #4", app("EQ", 4, 4), true),
			boolCase("EQ #4 #5", app("EQ", 4, 5), false),
			intCase("PLUS #4 #3", app("PLUS", 4, 3), 7),
			intCase("MINUS #9 #4", app("MINUS", 9, 4), 5),
			intCase("MULT #3 #5", app("MULT", 3, 5), 15),
			intCase("EXP #2 #5", app("EXP", 2, 5), 32),
			intCase("CAR (CONS #1 #2)", app("CAR", app("CONS", 1, 2)), 1),
			intCase("CDR (CONS #1 #2)", app("CDR", app("CONS", 1, 2)), 2),
			intCase("Y FACT #5", app("Y", "FACT", 5), 120),
			intCase("Y FIB #10", app("Y", "FIB", 10), 55),
			intCase("(x: #0) unbound", app(map[string]any{"lambda": "x", "body": 0}, map[string]any{"var": "unbound"}), 0),
		},
	}
}
