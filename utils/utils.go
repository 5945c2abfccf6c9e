package utils

import "strings"

// AddToLogMessage appends one entry to a per-request log that the handler prints when it returns.
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.Grow(len(strToAdd) + 2)
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";\n")
}
