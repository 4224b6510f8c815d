package main

import "io"

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "play - start a game against the computer\n")
	io.WriteString(w, "    enter moves as coordinates (f5); u takes back a round, x resigns\n")
	io.WriteString(w, "autoplay [n] [threads] - play n computer vs computer games; both default to 1\n")
	io.WriteString(w, "help - this text\n")
	io.WriteString(w, "exit - quit\n")
}
