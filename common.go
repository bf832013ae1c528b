package dercodec

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"strconv"
	"strings"
)

/*
official import aliases. Kept as package-level function variables
rather than bare stdlib calls throughout the codebase, matching the
convention the rest of this codebase was built on.
*/
var (
	mkerr      func(string) error                  = errors.New
	itoa       func(int) string                    = strconv.Itoa
	atoi       func(string) (int, error)           = strconv.Atoi
	split      func(string, string) []string       = strings.Split
	join       func([]string, string) string       = strings.Join
	replaceAll func(string, string, string) string = strings.ReplaceAll
	trimS      func(string) string                 = strings.TrimSpace
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
validClass reports whether class falls within the two-bit ASN.1 class
range DER's identifier octet can carry; [decodeTag] rejects a class
outside this range before the tag engine ever sees it.
*/
func validClass(class int) bool {
	return ClassUniversal <= class && class <= ClassPrivate
}
