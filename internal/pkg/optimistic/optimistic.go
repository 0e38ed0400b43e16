/*
Package optimistic implements the symmetric toggle used for likes, reposts, and
program membership.

A toggle flips a boolean flag and moves its paired counter by exactly one in
lock-step: flag true means the counter already includes this user. The update
is applied to local state immediately with no server-side reconciliation.
*/
package optimistic

// Toggle returns the flag and counter after one toggle application.
// A true flag decrements the counter; a false flag increments it.
// Two successive applications round-trip to the original pair.
func Toggle(flag bool, counter int) (bool, int) {
	if flag {
		return false, counter - 1
	}
	return true, counter + 1
}
