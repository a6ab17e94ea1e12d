// Package order models a noodle order as a chain of layers: a base of
// noodles, wrapped by zero or more ingredients, wrapped by at most one sauce.
//
// Item is a closed sum type over those three layers. Cost walks the chain
// and adds every layer's price; spiciness exists only when the outermost
// layer is a sauce. The builder functions turn menu choices into layers.
package order
