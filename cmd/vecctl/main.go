// Command vecctl runs the veckit simulation kernels from the terminal.
package main

func main() {
	execute()
}
