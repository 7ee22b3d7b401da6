// Package toast holds a session's transient notifications and the policy
// that bounds how many of them are visible at once.
//
// A Registry belongs to one session. Components add toasts through it and the
// toaster view reads it on every render:
//
//	reg := toast.NewRegistry(sess)
//	reg.Success("Saved", "Your changes have been saved.")
//
// Toasts dismiss themselves after their lifetime and leave the registry once
// the exit transition is over. A Limiter watches the registry and dismisses
// the oldest visible toasts whenever more than its limit are shown:
//
//	lim := toast.NewLimiter(reg)
//	stop := lim.Watch(reg)
//	defer stop()
package toast
