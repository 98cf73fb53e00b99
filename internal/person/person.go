package person

import "fmt"

// adultAge is the age at which a person counts as an adult.
const adultAge = 18

// Person is a small value type with a name, an age and an optional email.
// An empty Email means the email was never set. Values are built once and
// derived from, never mutated in place.
type Person struct {
	Name  string
	Age   int
	Email string
}

// New returns a Person with the email unset.
func New(name string, age int) Person {
	return Person{Name: name, Age: age}
}

// WithEmail returns a copy of p with the email set. No format validation.
func (p Person) WithEmail(email string) Person {
	p.Email = email
	return p
}

// Greet returns the greeting line for p.
func (p Person) Greet() string {
	return fmt.Sprintf("Hello, I'm %s and I'm %d years old", p.Name, p.Age)
}

// IsAdult reports whether p is at least 18 years old.
func (p Person) IsAdult() bool {
	return p.Age >= adultAge
}
