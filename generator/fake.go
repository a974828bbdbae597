package generator

import (
	"hash/fnv"
	"regexp"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/cpcf/timkit/seed"
)

const fakeName = "faker"

var localeTagRE = regexp.MustCompile(`^[a-z]{2}(_[A-Z]{2})?$`)

// Fake is the built-in fake-data generator, exposed to templates as "faker".
// It produces semantically named values (person names, addresses, emails and
// so on) from the gofakeit corpus, seeded from the shared store.
type Fake struct{}

func (Fake) Name() string { return fakeName }

func (Fake) Create(seeds *seed.Store) (any, error) {
	return newFakeSource(seeds.Next(), "en"), nil
}

// FakeSource is the template-facing instance created by Fake.
type FakeSource struct {
	faker  *gofakeit.Faker
	seed   int64
	locale string
}

func newFakeSource(s int64, locale string) *FakeSource {
	return &FakeSource{
		faker:  gofakeit.New(s),
		seed:   s,
		locale: locale,
	}
}

// Locale returns a view of the source for the given locale tag ("de" or
// "de_AT" style). The tag is validated and recorded; the returned view draws
// from its own deterministic sub-seed so interleaving localized and plain
// calls does not perturb either stream. The underlying corpus is English.
func (f *FakeSource) Locale(tag string) (*FakeSource, error) {
	if !localeTagRE.MatchString(tag) {
		return nil, invalidArg(fakeName, "locale", "malformed locale tag %q", tag)
	}
	h := fnv.New64a()
	h.Write([]byte(tag))
	return newFakeSource(f.seed^int64(h.Sum64()>>1), tag), nil
}

// LocaleTag reports which locale this source was created for.
func (f *FakeSource) LocaleTag() string { return f.locale }

func (f *FakeSource) Name() string      { return f.faker.Name() }
func (f *FakeSource) FirstName() string { return f.faker.FirstName() }
func (f *FakeSource) LastName() string  { return f.faker.LastName() }
func (f *FakeSource) Email() string     { return f.faker.Email() }
func (f *FakeSource) Username() string  { return f.faker.Username() }
func (f *FakeSource) Phone() string     { return f.faker.Phone() }
func (f *FakeSource) Company() string   { return f.faker.Company() }
func (f *FakeSource) JobTitle() string  { return f.faker.JobTitle() }
func (f *FakeSource) City() string      { return f.faker.City() }
func (f *FakeSource) Country() string   { return f.faker.Country() }
func (f *FakeSource) URL() string       { return f.faker.URL() }
func (f *FakeSource) Word() string      { return f.faker.Word() }

// Address returns a single-line street address.
func (f *FakeSource) Address() string {
	return f.faker.Address().Address
}

// Sentence returns a sentence of the requested word count.
func (f *FakeSource) Sentence(words int) (string, error) {
	if words < 1 {
		return "", invalidArg(fakeName, "words", "word count must be positive, got %d", words)
	}
	return f.faker.Sentence(words), nil
}
