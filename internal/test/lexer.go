package test

import (
	"fmt"
	"math/rand"
	"strings"
)

const validTokens = "type;int;a;b;count;total;x;,;;;+;-;*;/;=;(;);0;1;42;1234567890;@"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}

// GetValidProgram returns a program of size statements that parses and checks
// cleanly: every variable is declared before the assignments that use it.
func GetValidProgram(size int) string {
	var b strings.Builder
	declared := 0

	for i := 0; i < size; i++ {
		if declared == 0 || rand.Intn(4) == 0 {
			fmt.Fprintf(&b, "type int %s;\n", varName(declared))
			declared++
			continue
		}

		target := varName(rand.Intn(declared))
		operand := varName(rand.Intn(declared))
		fmt.Fprintf(&b, "%s = (%s + %d) * %s - %d / 2;\n", target, operand, rand.Intn(100), operand, rand.Intn(100)+1)
	}

	return b.String()
}

// varName maps n to a letters-only identifier: 0 -> va, 25 -> vz, 26 -> vba.
// The prefix keeps the names clear of the keywords.
func varName(n int) string {
	name := []byte{byte('a' + n%26)}
	for n /= 26; n > 0; n /= 26 {
		name = append([]byte{byte('a' + n%26)}, name...)
	}

	return "v" + string(name)
}
