// ABOUTME: Command line front end for lead searches
// ABOUTME: Runs searches in process or against a remote server and exports CSV

package main

func main() {
	Execute()
}
