package console

import (
	"fmt"

	"github.com/TwiN/go-color"
)

// Log success message to console.
func Success(message string, vars ...any) {
	fmt.Printf(color.Ize(color.Green, message+"\n"), vars...)
}

// Log warning message to console.
func Warning(message string, vars ...any) {
	fmt.Printf(color.Ize(color.Yellow, message+"\n"), vars...)
}

// Log error message to console.
func ErrorPrint(message string, vars ...any) {
	fmt.Printf(color.Ize(color.Red, message+"\n"), vars...)
}
