package parser

import (
	"github.com/charmbracelet/log"
)

// Parser tokenizes and validates raw export lines.
type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}
