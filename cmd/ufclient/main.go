// Command ufclient replays a union-find workload and prints every pair that
// joined two previously separate sets, followed by the number of components.
//
//	ufclient tinyUF.txt
//	ufclient --variant quick-find --trace scenario.toml
//	cat tinyUF.txt | ufclient
package main

func main() {
	Execute()
}
