// Package template implements behavior templates: reusable specifications
// of container behavior paired with an optional structural seed, combined
// through a last-write-wins algebra and instantiated into concrete
// containers.
package template
