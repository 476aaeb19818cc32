// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/andeslegal/cobranza/ent/casedocument"
	"github.com/andeslegal/cobranza/ent/schema"
	"github.com/andeslegal/cobranza/ent/suggestion"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	casedocumentFields := schema.CaseDocument{}.Fields()
	_ = casedocumentFields
	// casedocumentDescPosition is the schema descriptor for position field.
	casedocumentDescPosition := casedocumentFields[5].Descriptor()
	// casedocument.DefaultPosition holds the default value on creation for the position field.
	casedocument.DefaultPosition = casedocumentDescPosition.Default.(int)
	// casedocumentDescContentType is the schema descriptor for content_type field.
	casedocumentDescContentType := casedocumentFields[6].Descriptor()
	// casedocument.DefaultContentType holds the default value on creation for the content_type field.
	casedocument.DefaultContentType = casedocumentDescContentType.Default.(string)
	// casedocumentDescSizeBytes is the schema descriptor for size_bytes field.
	casedocumentDescSizeBytes := casedocumentFields[7].Descriptor()
	// casedocument.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	casedocument.DefaultSizeBytes = casedocumentDescSizeBytes.Default.(int64)
	collectioncaseFields := schema.CollectionCase{}.Fields()
	_ = collectioncaseFields
	suggestionFields := schema.Suggestion{}.Fields()
	_ = suggestionFields
	// suggestionDescScore is the schema descriptor for score field.
	suggestionDescScore := suggestionFields[6].Descriptor()
	// suggestion.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	suggestion.ScoreValidator = func() func(float64) error {
		validators := suggestionDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// suggestionDescSubmitted is the schema descriptor for submitted field.
	suggestionDescSubmitted := suggestionFields[7].Descriptor()
	// suggestion.DefaultSubmitted holds the default value on creation for the submitted field.
	suggestion.DefaultSubmitted = suggestionDescSubmitted.Default.(bool)
}
