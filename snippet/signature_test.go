package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test that a class header above the target is located
func TestLocateSignature_ClassHeader(t *testing.T) {
	lines := []string{
		"<?php",
		"",
		"final class InvoiceRenderer",
		"{",
		"    private $rows = [];",
		"    private $format;",
		"    private $locale;",
	}

	signatureLine, found := locateSignature(lines, 7)

	assert.True(t, found)
	assert.Equal(t, 3, signatureLine)
}

// Test that interface, trait and enum headers are recognized
func TestLocateSignature_CompoundTypeKinds(t *testing.T) {
	headers := []string{
		"interface Renderable",
		"trait CountsRows",
		"enum Severity",
		"abstract class BaseRule",
	}

	for _, header := range headers {
		lines := []string{header, "{", "    // body"}

		signatureLine, found := locateSignature(lines, 3)

		assert.True(t, found, "header %q", header)
		assert.Equal(t, 1, signatureLine, "header %q", header)
	}
}

// Test that a member-function header is located, static or not
func TestLocateSignature_MemberFunction(t *testing.T) {
	lines := []string{
		"    public static function fromArray(array $data)",
		"    {",
		"        $rows = [];",
		"        $index = 0;",
	}

	signatureLine, found := locateSignature(lines, 4)

	assert.True(t, found)
	assert.Equal(t, 1, signatureLine)
}

// Test that a standalone function header must not be indented
func TestLocateSignature_StandaloneFunction(t *testing.T) {
	lines := []string{
		"function renderGutter($width)",
		"{",
		"    $pad = str_repeat(' ', $width);",
	}

	signatureLine, found := locateSignature(lines, 3)
	assert.True(t, found)
	assert.Equal(t, 1, signatureLine)

	// Indented plain function is a closure or nested helper, not a header.
	indented := []string{
		"    function renderGutter($width)",
		"    {",
		"        $pad = str_repeat(' ', $width);",
	}

	_, found = locateSignature(indented, 3)
	assert.False(t, found)
}

// Test that a bare closing brace stops the scan with no match
func TestLocateSignature_ClosingBraceStopsScan(t *testing.T) {
	lines := []string{
		"class Preceding",
		"{",
		"    public function earlier() {}",
		"}",
		"",
		"$value = compute();",
		"$other = $value + 1;",
	}

	_, found := locateSignature(lines, 7)

	assert.False(t, found)
}

// Test that comment markers are stripped before the brace check
func TestLocateSignature_ClosingBraceWithComment(t *testing.T) {
	lines := []string{
		"class Preceding",
		"{",
		"} // end class Preceding",
		"",
		"$value = compute();",
	}

	_, found := locateSignature(lines, 5)

	assert.False(t, found)
}

// Test that a closing brace with trailing code does not stop the scan
func TestLocateSignature_NonBareBraceContinues(t *testing.T) {
	lines := []string{
		"    public function build()",
		"    {",
		"        $cb = function () { return 1; };",
		"        $x = 2;",
	}

	signatureLine, found := locateSignature(lines, 4)

	assert.True(t, found)
	assert.Equal(t, 1, signatureLine)
}

// Test that headers beyond the 15-line lookback are not found
func TestLocateSignature_LookbackFloor(t *testing.T) {
	lines := make([]string, 0, 30)
	lines = append(lines, "class TooFarAway")
	for i := 0; i < 29; i++ {
		lines = append(lines, "    $counter = $counter + 1;")
	}

	// Header at line 1, target at line 17: floor is max(17-15, 1) = 2.
	_, found := locateSignature(lines, 17)
	assert.False(t, found)

	// Target at line 16 brings the header back within reach.
	signatureLine, found := locateSignature(lines, 16)
	assert.True(t, found)
	assert.Equal(t, 1, signatureLine)
}

// Test that the scan never reads the target line or below
func TestLocateSignature_NeverReadsForward(t *testing.T) {
	lines := []string{
		"$above = 1;",
		"$target = 2;",
		"class Below",
	}

	_, found := locateSignature(lines, 2)

	assert.False(t, found)
}

// Test that plain statements yield no match
func TestLocateSignature_NoHeader(t *testing.T) {
	lines := []string{
		"$a = 1;",
		"$b = $a * 2;",
		"$c = $b - 1;",
	}

	_, found := locateSignature(lines, 3)

	assert.False(t, found)
}

// Test that the embedded pattern table is ordered and compiled
func TestLoadSignaturePatterns(t *testing.T) {
	assert.Len(t, signaturePatterns, 3)
	assert.Equal(t, "compound_type", signaturePatterns[0].Kind)
	assert.Equal(t, "member_function", signaturePatterns[1].Kind)
	assert.Equal(t, "standalone_function", signaturePatterns[2].Kind)

	for _, pattern := range signaturePatterns {
		assert.NotNil(t, pattern.re)
	}
}
