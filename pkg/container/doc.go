// Package container implements the dynamic key-value container that behavior
// templates decorate: a hybrid ordered/keyed store whose reads, writes, size
// queries, and iteration can be intercepted through an attached trap spec.
package container
