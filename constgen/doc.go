// Package constgen turns ordered property sources into a single source file of
// typed constants.
//
// The pipeline for one run:
//   - Plan resolves a fully qualified name into a Target (namespace, simple name, file)
//   - Classify maps every key/value pair to a Kind from its key prefix or literal value
//   - Format renders the pair as one declaration line in the selected Dialect
//   - Emitter writes header, container, one comment per Source, declarations, footer
//
// Identifiers: for every kind except String the leading type segment of the key
// ("int." in "int.max_size") is dropped, dots become underscores and the result is
// uppercased. String keys keep every segment ("app.name" -> APP_NAME).
//
// Values are never validated or escaped. A Char value longer than one character or
// a String value containing quotes produces output the target compiler rejects.
package constgen
