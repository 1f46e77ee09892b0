package syntax

// The built-in languages: C/C++, Go, Python and Rust. Keywords with a
// trailing '|' belong to the secondary class (type names).

var cKeywords = []string{
	"auto", "break", "case", "const", "continue", "default", "do", "else", "enum", "extern",
	"for", "goto", "if", "register", "return", "sizeof", "static", "struct", "switch",
	"typedef", "union", "volatile", "while", "__asm__", "NULL", "alignas", "alignof",
	"and", "and_eq", "asm", "bitand", "bitor", "class", "compl", "constexpr",
	"const_cast", "deltype", "delete", "dynamic_cast", "explicit", "export", "false",
	"friend", "inline", "mutable", "using", "namespace", "new", "noexcept", "not",
	"not_eq", "nullptr", "operator", "or", "or_eq", "private", "protected", "public",
	"reinterpret_cast", "static_assert", "static_cast", "template", "this",
	"thread_local", "throw", "true", "try", "typeid", "typename", "virtual",
	"xor", "xor_eq", "#define", "#include", "#if", "ifdef", "#ifndef",
	"#endif", "#error", "#warning", "#pragma",

	"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
	"void|", "short|", "auto|", "bool|",
}

var goKeywords = []string{
	"if", "else", "switch", "case", "func", "then", "for", "var", "type", "interface", "const", "range",
	"return", "struct", "default", "iota", "nil", "package", "import", "map", "break", "continue",

	"int|", "int8|", "int16|", "int32|", "int64|", "uint|", "uint8|", "uint16|", "uint32|", "uint64|",
	"float32|", "float64|", "byte|", "rune|", "bool|", "string|", "complex64|", "complex128|",
	"any|", "error|", "comparable|",
}

var pythonKeywords = []string{
	"and", "as", "assert", "break", "class", "continue", "def", "del", "elif",
	"else", "except", "exec", "finally", "for", "from", "global", "if", "import",
	"in", "is", "lambda", "not", "or", "pass", "print", "raise", "return", "try",
	"while", "with", "yield", "async", "await", "nonlocal", "range", "xrange",
	"reduce", "map", "filter", "all", "any", "sum", "dir", "abs", "breakpoint",
	"compile", "delattr", "divmod", "format", "eval", "getattr", "hasattr",
	"hash", "help", "id", "input", "isinstance", "issubclass", "len", "locals",
	"max", "min", "next", "open", "pow", "repr", "reversed", "round", "setattr",
	"slice", "sorted", "super", "vars", "zip", "__import__", "reload", "raw_input",
	"execfile", "file", "cmp", "basestring",

	"buffer|", "bytearray|", "bytes|", "complex|", "float|", "frozenset|", "int|",
	"list|", "long|", "None|", "set|", "str|", "chr|", "tuple|", "bool|", "False|",
	"True|", "type|", "unicode|", "dict|", "ascii|", "bin|", "callable|",
	"classmethod|", "enumerate|", "hex|", "oct|", "ord|", "iter|", "memoryview|",
	"object|", "property|", "staticmethod|", "unichr|",
}

var rustKeywords = []string{
	"as", "async", "await", "const", "crate", "dyn", "enum", "extern", "fn", "impl", "let",
	"mod", "move", "mut", "pub", "ref", "Self", "static", "struct", "super", "trait", "type",
	"union", "unsafe", "use", "where", "break", "continue", "else", "for", "if", "in", "loop",
	"match", "return", "while",

	"i8|", "i16|", "i32|", "i64|", "i128|", "isize|", "u8|", "u16|", "u32|", "u64|", "u128|", "usize|",
	"f32|", "f64|", "bool|", "char|", "Box|", "Option|", "Some|", "None|", "Result|", "Ok|", "Err|",
	"String|", "Vec|", "let|", "const|", "mod|", "struct|", "enum|", "trait|", "union|", "self|",
	"true|", "false|",
}

func builtins() []Syntax {
	return []Syntax{
		{
			Name: "C/C++",
			FileMatch: []string{".c", ".h", ".cpp", ".hpp",
				".cc", ".hh", ".cxx", ".hxx"},
			Keywords:              cKeywords,
			SingleLineComment:     "//",
			MultiLineCommentStart: "/*",
			MultiLineCommentEnd:   "*/",
			HighlightNumbers:      true,
			HighlightStrings:      true,
		},
		{
			Name:                  "Golang",
			FileMatch:             []string{".go"},
			Keywords:              goKeywords,
			SingleLineComment:     "//",
			MultiLineCommentStart: "/*",
			MultiLineCommentEnd:   "*/",
			HighlightNumbers:      true,
			HighlightStrings:      true,
		},
		{
			Name: "Python",
			FileMatch: []string{".py", "pyi", ".xpy", "pyx",
				".pyw", ".ipynb"},
			Keywords:              pythonKeywords,
			SingleLineComment:     "#",
			MultiLineCommentStart: `"""`,
			MultiLineCommentEnd:   `"""`,
			HighlightNumbers:      true,
			HighlightStrings:      true,
		},
		{
			Name:                  "Rust",
			FileMatch:             []string{".rs"},
			Keywords:              rustKeywords,
			SingleLineComment:     "//",
			MultiLineCommentStart: "/*",
			MultiLineCommentEnd:   "*/",
			HighlightNumbers:      true,
			HighlightStrings:      true,
		},
	}
}
