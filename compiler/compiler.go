package compiler

// StageNames lists the pipeline stages in execution order. --max_function
// truncates the pipeline immediately after the named stage.
var StageNames = []string{
	"source_reader",
	"scanner",
	"parser",
	"semantic_analyzer",
	"inter_code_gen",
	"code_gen",
}

// IsStageName reports whether name is one of StageNames, for CLI flag
// validation.
func IsStageName(name string) bool {
	for _, s := range StageNames {
		if s == name {
			return true
		}
	}
	return false
}

// Compile runs the full pipeline against inputFile: scan, parse, build the
// element tree, run semantic analysis, generate intermediate code, and
// emit C# source. If maxFunction is non-empty, it must name a stage in
// StageNames; the pipeline computes through that stage and returns without
// writing anything. Otherwise the generated files are written to
// outputDir — the writer only ever runs on a full, untruncated pipeline, so
// a failure at any earlier stage never leaves partial output on disk.
func Compile(inputFile, outputDir, maxFunction string) error {
	runes, err := ReadSource(inputFile)
	if err != nil {
		return err
	}
	if maxFunction == "source_reader" {
		return nil
	}

	tokens, err := Scan(runes)
	if err != nil {
		return err
	}
	if maxFunction == "scanner" {
		return nil
	}

	xmlTokens, err := Parse(tokens)
	if err != nil {
		return err
	}

	root, err := BuildTree(xmlTokens)
	if err != nil {
		return err
	}
	if maxFunction == "parser" {
		return nil
	}

	typedRoot, types, err := Analyze(root)
	if err != nil {
		return err
	}
	if maxFunction == "semantic_analyzer" {
		return nil
	}

	code, err := Generate(typedRoot, types)
	if err != nil {
		return err
	}
	if maxFunction == "inter_code_gen" {
		return nil
	}

	files := Emit(code)
	if maxFunction == "code_gen" {
		return nil
	}

	return WriteFiles(outputDir, files)
}
