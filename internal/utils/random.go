package utils

import (
	"fmt"
	"math/rand"
	"strings"
)

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var digits = "0123456789"

// UsernameFromFullName derives a login name from a display name: lowercased,
// spaces removed, with a short random digit suffix to dodge collisions.
func UsernameFromFullName(fullName string) string {
	username := strings.ToLower(strings.ReplaceAll(fullName, " ", ""))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}
