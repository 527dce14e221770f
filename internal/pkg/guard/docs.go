// Package guard holds the constructor guard embedded by domain objects and the
// small argument checks their constructors are built from.
package guard
