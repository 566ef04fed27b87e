package parser

import "expect/internal/domain"

// Parser turns a test binary's result into a report
type Parser interface {
	Parse(result domain.BinaryResult) domain.Report
}
