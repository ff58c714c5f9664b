// Package assemble joins extracted transcript rows with identity
// resolution and the sitting date to produce final record sets, chair
// attribution included.
package assemble
