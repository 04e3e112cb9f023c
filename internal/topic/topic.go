/*
Package topic decides whether a chat message is about food, diet or health
before it is allowed to reach the completion backend. It is a deterministic
keyword heuristic and accepts false positives such as "What's the weather?".
*/
package topic

import "strings"

// Vocabulary is the word list a Classifier matches against. All entries are
// lower case.
type Vocabulary struct {
	// Keywords match anywhere in the message.
	Keywords []string

	// Starters match only at the start of the message.
	Starters []string

	// Adjectives match anywhere in the message.
	Adjectives []string
}

// Classifier is safe for concurrent use; it never mutates its vocabulary.
type Classifier struct {
	vocab Vocabulary
}

// New returns a classifier over v.
func New(v Vocabulary) *Classifier {
	return &Classifier{vocab: v}
}

// Merge concatenates vocabularies. A classifier over the result accepts
// anything any of them accepts.
func Merge(vs ...Vocabulary) Vocabulary {
	var out Vocabulary
	for _, v := range vs {
		out.Keywords = append(out.Keywords, v.Keywords...)
		out.Starters = append(out.Starters, v.Starters...)
		out.Adjectives = append(out.Adjectives, v.Adjectives...)
	}
	return out
}

// IsNutritionRelated checks, in order: keyword substrings, question-starter
// prefixes, health adjectives. Any hit accepts the message.
func (c *Classifier) IsNutritionRelated(text string) bool {
	q := strings.ToLower(text)

	for _, kw := range c.vocab.Keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	for _, s := range c.vocab.Starters {
		if strings.HasPrefix(q, s) {
			return true
		}
	}
	for _, adj := range c.vocab.Adjectives {
		if strings.Contains(q, adj) {
			return true
		}
	}
	return false
}
