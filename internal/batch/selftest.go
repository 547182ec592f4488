package batch

// SelfTest returns the built-in scenario: the conversion table the project has
// carried since its earliest demo runs, plus the failure-path checks.
func SelfTest() *Scenario {
	return &Scenario{
		Name:             "selftest",
		DefaultPrime:     5,
		DefaultPrecision: 20,
		Cases: []Case{
			{Name: "zero", Value: "0", WantValuation: iptr(0)},
			{Name: "one", Value: "1", WantValuation: iptr(0)},
			{Name: "prime itself", Value: "5", WantValuation: iptr(1)},
			{Name: "prime squared", Value: "25", WantValuation: iptr(2)},
			{Name: "integer not divisible by prime", Value: "42", WantValuation: iptr(0)},
			{Name: "negative integer", Value: "-7", WantValuation: iptr(0)},
			{Name: "unit fraction", Value: "1/2", WantValuation: iptr(0)},
			{Name: "general fraction", Value: "3/7", WantValuation: iptr(0)},
			{Name: "reciprocal of prime", Value: "1/5", WantValuation: iptr(-1)},
			{Name: "reciprocal of prime squared", Value: "1/25", WantValuation: iptr(-2)},
			{Name: "fraction with prime in denominator", Value: "2/5", WantValuation: iptr(-1)},
			{Name: "fraction with prime squared in denominator", Value: "7/25", WantValuation: iptr(-2)},
			{Name: "numerator divisible by prime", Value: "15/4", WantValuation: iptr(1)},
			{Name: "factor of prime in numerator", Value: "10/3", WantValuation: iptr(1)},
			{Name: "negative fraction", Value: "-3/5", WantValuation: iptr(-1)},
			{Name: "reciprocal of different prime", Value: "1/3", Prime: 3, WantValuation: iptr(-1)},
			{Name: "different prime squared", Value: "9", Prime: 3, WantValuation: iptr(2)},
			{Name: "fraction with different prime squared", Value: "2/9", Prime: 3, WantValuation: iptr(-2)},
			{Name: "power of 2", Value: "8", Prime: 2, WantValuation: iptr(3)},
			{Name: "reciprocal of power of 2", Value: "1/4", Prime: 2, WantValuation: iptr(-2)},
			{Name: "odd numerator power of 2 denominator", Value: "3/8", Prime: 2, WantValuation: iptr(-3)},
			{Name: "7 squared", Value: "49", Prime: 7, WantValuation: iptr(2)},
			{Name: "fraction with 7 in denominator", Value: "5/7", Prime: 7, WantValuation: iptr(-1)},
			{Name: "7 in numerator", Value: "14/3", Prime: 7, WantValuation: iptr(1)},
			{Name: "zero across prime 11", Value: "0", Prime: 11, WantValuation: iptr(0)},
			{Name: "composite modulus rejected", Value: "3", Prime: 4, WantError: "invalid_prime"},
			{Name: "zero denominator rejected", Value: "1/0", WantError: "division_by_zero"},
			{Name: "precision too small", Value: "1/7", Precision: 2, WantError: "precision_insufficient"},
		},
	}
}

func iptr(v int) *int { return &v }
