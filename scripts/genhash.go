// One-off: go run scripts/genhash.go <password>
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

func main() {
	password := "admin"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	sum := sha256.Sum256([]byte(password))
	fmt.Print(hex.EncodeToString(sum[:]))
}
