package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nalgeon/be"

	"minicc/mdtest"
)

func TestMarkdownSuites(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*_test.md")
	be.Err(t, err, nil)
	be.True(t, len(testFiles) > 0)

	for _, testFile := range testFiles {
		fileName := filepath.Base(testFile)
		testName := strings.TrimSuffix(fileName, ".md")

		t.Run(testName, func(t *testing.T) {
			content, err := os.ReadFile(testFile)
			be.Err(t, err, nil)

			testCases, err := mdtest.ExtractTestCases(string(content))
			be.Err(t, err, nil)

			for _, tc := range testCases {
				t.Run(tc.Name, func(t *testing.T) {
					runMarkdownCase(t, tc)
				})
			}
		})
	}
}

func runMarkdownCase(t *testing.T, tc mdtest.TestCase) {
	t.Helper()

	for _, assertion := range tc.Assertions {
		switch assertion.Type {
		case mdtest.AssertionTypeAST:
			assertASTMatch(t, tc, assertion)

		case mdtest.AssertionTypeTokens:
			tokens, err := NewLexer([]byte(tc.Input)).Tokenize()
			be.Err(t, err, nil)
			diffListing(t, "tokens", assertion.Content, sectionBody(FormatTokens(tokens)))

		case mdtest.AssertionTypeSymbols:
			res, err := Compile(tc.Input)
			be.Err(t, err, nil)
			diffListing(t, "symbol table", assertion.Content, sectionBody(FormatSymbolTable(res.Table)))

		case mdtest.AssertionTypeTAC:
			res, err := Compile(tc.Input)
			be.Err(t, err, nil)
			diffListing(t, "TAC", assertion.Content, strings.Join(res.TAC, "\n"))

		case mdtest.AssertionTypeReport:
			var buf bytes.Buffer
			err := WriteReport(&buf, tc.Input)
			be.Err(t, err, nil)
			diffListing(t, "report", assertion.Content, strings.TrimRight(buf.String(), "\n"))

		case mdtest.AssertionTypeCompileError:
			_, err := Compile(tc.Input)
			be.True(t, err != nil)
			if err != nil {
				be.Equal(t, err.Error(), assertion.Content)
			}

		default:
			t.Fatalf("unhandled assertion type: %s", assertion.Type)
		}
	}
}

func assertASTMatch(t *testing.T, tc mdtest.TestCase, assertion mdtest.Assertion) {
	t.Helper()

	var node *ASTNode
	var err error
	if tc.InputType == mdtest.InputTypeExpr {
		node, err = parseExprSource(tc.Input)
	} else {
		node, err = parseSource(tc.Input)
	}
	be.Err(t, err, nil)

	// Round-trip the actual s-expression through the reader so both
	// sides compare in canonical form.
	got, err := mdtest.ParseSexpr(ToSExpr(node))
	be.Err(t, err, nil)
	be.Equal(t, got.String(), assertion.ParsedSexpr.String())
}

func parseExprSource(src string) (*ASTNode, error) {
	tokens, err := NewLexer([]byte(src)).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseExpression()
}

// sectionBody strips a section's header line and trailing blank line,
// leaving just the listing rows.
func sectionBody(section string) string {
	body := section[strings.IndexByte(section, '\n')+1:]
	return strings.TrimRight(body, "\n")
}

func diffListing(t *testing.T, what, want, got string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", what, diff)
	}
}
