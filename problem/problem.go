// Package problem assembles factoring.Instance values into the two
// modes the CLI exposes — spec §4.I: direct mode factors a given
// number, random mode draws a candidate from a range under an optional
// primality constraint and factors that instead. Grounded on
// original_source/gen_factor_sat/factoring_sat.py's
// factorize_random_number/_generate_number, generalized with the
// tri-state primality predicate and classification the distilled spec
// adds.
package problem

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/Skilldehyde/gen-factor-sat/factoring"
	"github.com/Skilldehyde/gen-factor-sat/internal/observ"
	"github.com/Skilldehyde/gen-factor-sat/primality"
)

// Classification records how a random-mode candidate's primality was
// determined, since a number can be confirmed prime/composite either
// by a deterministic test or by a bounded-error Monte-Carlo test — spec §4.I.
type Classification int

const (
	// Unknown means no primality constraint was requested.
	Unknown Classification = iota
	DeterministicPrime
	ProbabilisticPrime
	DeterministicComposite
	ProbabilisticComposite
)

func (c Classification) String() string {
	switch c {
	case DeterministicPrime:
		return "prime"
	case ProbabilisticPrime:
		return "prob-prime"
	case DeterministicComposite, ProbabilisticComposite:
		return "composite"
	default:
		return "random"
	}
}

// Error reports a failure constructing a problem instance.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	return "problem: " + e.Op + ": " + e.Message
}

// Direct factors the given number unconditionally — spec §4.I direct
// mode, the `number` CLI subcommand.
func Direct(number *big.Int) (factoring.Instance, error) {
	return factoring.Factorize(number)
}

// RandomOptions configures a random-mode draw — spec §6's `random`
// subcommand flags.
type RandomOptions struct {
	Min      *big.Int
	Max      *big.Int
	Seed     *int64 // nil means "unset": draw a fresh seed from OS entropy
	Prime    *bool  // nil means "no constraint", true/false request primality/compositeness
	MaxError float64
	MaxTries int
	Logger   *observ.Logger
}

// Result is the outcome of a successful random-mode draw and its
// factoring instance.
type Result struct {
	Instance       factoring.Instance
	Seed           int64
	Min, Max       *big.Int
	Classification Classification
}

// Random draws a number in [Min, Max] satisfying the optional
// primality constraint, then factors it. It gives up after MaxTries
// unsuccessful draws — spec §4.I, §7.
func Random(opts RandomOptions) (Result, error) {
	if opts.Min == nil || opts.Max == nil {
		return Result{}, &Error{Op: "Random", Message: "min and max must not be nil"}
	}
	if opts.Min.Cmp(opts.Max) > 0 {
		return Result{}, &Error{Op: "Random", Message: fmt.Sprintf("min %s is greater than max %s", opts.Min, opts.Max)}
	}
	if opts.MaxTries <= 0 {
		return Result{}, &Error{Op: "Random", Message: "max tries must be positive"}
	}

	seed := opts.Seed
	var resolvedSeed int64
	if seed == nil {
		var buf [8]byte
		if _, err := crand.Read(buf[:]); err != nil {
			return Result{}, &Error{Op: "Random", Message: "read seed from OS entropy: " + err.Error()}
		}
		resolvedSeed = int64(binary.LittleEndian.Uint64(buf[:]))
	} else {
		resolvedSeed = *seed
	}

	rng := rand.New(rand.NewSource(resolvedSeed))

	var candidate *big.Int
	var classification Classification

	for attempt := 1; attempt <= opts.MaxTries; attempt++ {
		candidate = drawInRange(rng, opts.Min, opts.Max)
		if opts.Logger != nil {
			opts.Logger.Attempt(resolvedSeed, attempt, candidate.String())
		}

		if opts.Prime == nil {
			classification = Unknown
			break
		}

		isPrime := primality.IsPrime(candidate, opts.MaxError)
		classification = classify(isPrime, opts.MaxError)
		if opts.Logger != nil {
			opts.Logger.Classified(candidate.String(), classification.String())
		}

		if isPrime == *opts.Prime {
			break
		}
		candidate = nil
	}

	if candidate == nil {
		if opts.Logger != nil {
			opts.Logger.GaveUp(resolvedSeed, opts.MaxTries)
		}
		return Result{}, &Error{Op: "Random", Message: fmt.Sprintf("exhausted %d tries without finding a matching candidate", opts.MaxTries)}
	}

	instance, err := factoring.Factorize(candidate)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Instance:       instance,
		Seed:           resolvedSeed,
		Min:            new(big.Int).Set(opts.Min),
		Max:            new(big.Int).Set(opts.Max),
		Classification: classification,
	}, nil
}

func classify(isPrime bool, maxError float64) Classification {
	deterministic := maxError <= 0
	switch {
	case isPrime && deterministic:
		return DeterministicPrime
	case isPrime:
		return ProbabilisticPrime
	case deterministic:
		return DeterministicComposite
	default:
		return ProbabilisticComposite
	}
}

// drawInRange returns a uniformly distributed *big.Int in [min, max].
func drawInRange(rng *rand.Rand, min, max *big.Int) *big.Int {
	span := new(big.Int).Sub(max, min)
	span.Add(span, big.NewInt(1))

	if span.Sign() <= 0 {
		return new(big.Int).Set(min)
	}

	offset := new(big.Int).Rand(rng, span)
	return offset.Add(offset, min)
}
