package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/complex-gh/seed14"
)

func main() {
	seed, err := seed14.Generate(time.Now().UTC())
	if err != nil {
		panic(err)
	}
	defer seed.Free()

	phrase := seed.String()
	fmt.Printf("Generated mnemonic phrase:\n%s\n\n", phrase)

	decoded, err := seed14.Parse(phrase)
	if err != nil {
		fmt.Printf("Error parsing phrase: %v\n", err)
		return
	}
	defer decoded.Free()

	fmt.Printf("Successfully parsed seed!\n")
	fmt.Printf("Date: %s\n", decoded.Date().Format(time.RFC3339))
	fmt.Printf("Key:  %s\n", decoded.KeyHex())

	// Erase one word and recover it via the Reed-Solomon checksum.
	words := strings.Split(phrase, " ")
	words[7] = "xxxx"
	damaged := strings.Join(words, " ")

	recovered, err := seed14.Parse(damaged)
	if err != nil {
		fmt.Printf("Error recovering phrase: %v\n", err)
		return
	}
	defer recovered.Free()

	word, ok := recovered.Correction()
	fmt.Printf("Recovered word 7: %q (ok=%v)\n", word, ok)
}
