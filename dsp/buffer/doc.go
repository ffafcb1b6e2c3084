// Package buffer provides a reusable generic sample buffer and pool for
// allocation-friendly DSP processing. All DSP functions accept raw sample
// slices; Buffer is an optional convenience that helps callers manage
// allocation and reuse in hot paths.
package buffer
