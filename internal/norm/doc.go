// Package norm provides the field normalisers shared by the vocabulary
// mappers: multilingual label sets, external-identifier lists, relationship
// lists and status flags.
//
// Every function is pure. Heterogeneous raw shapes (legacy identifier
// forms, bare strings, already-normalised maps) are decoded into the
// canonical domain structure exactly once, here at the normaliser boundary,
// so mappers never branch on raw shape.
package norm
