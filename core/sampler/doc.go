// Package sampler draws fixed-length, randomly positioned, one-hot encoded
// slices from FASTA records for ML training loops.
//
// Three samplers share the same encoding and skip/cycle rules:
//
//   - Sequential scans a FASTA once per pass and yields one slice per record,
//     labeled with the record description.
//   - Repeated scans the same way but yields nSamples slices per record.
//   - Indexed reads through a .fai index. It iterates like Repeated and also
//     serves direct lookups by logical index (Len/Get).
//
// Records too short for the slice size are skipped, never reported. With
// cycle set, exhausting the input starts over from the first record.
//
// Samplers are not safe for concurrent use; open one per goroutine.
package sampler
