// Command stackdemo opens a window with three screens and animates between them.
//
// Keys: G opens the games screen, S opens settings, Escape or Backspace goes back.
package main

import "runtime"

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	Execute()
}
