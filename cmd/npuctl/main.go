package main

import "github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/cmd/npuctl/cmd"

func main() {
	cmd.Execute()
}
