// internal/harness/haystack.go
package harness

import "strings"

// fillerSentences cycle to pad haystacks out to the target length.
var fillerSentences = []string{
	"The quick brown fox jumps over the lazy dog.",
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Pack my box with five dozen liquor jugs.",
	"How vexingly quick daft zebras jump.",
	"The five boxing wizards jump quickly.",
	"Bright vixens jump; dozy fowl quack.",
}

// HaystackTargetWords returns the filler size in words for a context window:
// ~60% of numCtx tokens at roughly 0.75 words per token.
func HaystackTargetWords(numCtx int) int {
	return int(float64(numCtx) * 0.6 * 0.75)
}

// BuildHaystack produces filler text with the needle spliced in at the given
// fractional position. The needle lands at word index
// int(targetWords*positionFrac) of the filler.
func BuildHaystack(needle string, positionFrac float64, numCtx int) string {
	targetWords := HaystackTargetWords(numCtx)

	fillerWords := make([]string, 0, targetWords)
	for i := 0; len(fillerWords) < targetWords; i++ {
		fillerWords = append(fillerWords, strings.Fields(fillerSentences[i%len(fillerSentences)])...)
	}
	fillerWords = fillerWords[:targetWords]

	insertPos := int(float64(len(fillerWords)) * positionFrac)
	needleWords := strings.Fields(needle)

	final := make([]string, 0, len(fillerWords)+len(needleWords))
	final = append(final, fillerWords[:insertPos]...)
	final = append(final, needleWords...)
	final = append(final, fillerWords[insertPos:]...)
	return strings.Join(final, " ")
}
