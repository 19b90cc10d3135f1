// Package rotation computes weekly technical owner (TO) rotations.
//
// Given an ordered owner list, a start date and a horizon in days, Generate
// returns one Assignment per Wednesday. Primaries cycle through the list in
// round-robin order and each week's backup is the previous week's primary.
// The first week has no predecessor, so its backup follows a BackupPolicy:
//   - BackupWrap (default): the last owner of the list.
//   - BackupBlank: no backup.
//   - BackupPrimary: the week-0 primary itself.
//
// Generation does no I/O and reads no clock; callers pass the reference
// date explicitly.
package rotation
