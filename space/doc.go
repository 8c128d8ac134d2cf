// Package space defines the configuration-space port of the planner:
// sampling, validity checking, the metric, local-motion checking and the
// clone/free ownership protocol for opaque states. A real-vector box space
// with an injectable validity function is provided; other spaces plug in by
// implementing the Space interface.
package space
