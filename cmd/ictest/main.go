// The ictest command exercises a memory or CPU device in the simulated
// tester socket.
package main

func main() {
	Execute()
}
