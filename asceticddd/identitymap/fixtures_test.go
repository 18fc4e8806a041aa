package identitymap

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/icrowley/fake"
	"github.com/oklog/ulid/v2"
	"syreclabs.com/go/faker"
)

// Fixtures carry a field: Go may hand out one address to all zero-size allocations.
type foo struct {
	Name string
}

type bar struct {
	Name string
}

type baz struct {
	Name string
}

type named interface {
	name() string
}

func (f *foo) name() string { return f.Name }
func (b *bar) name() string { return b.Name }

var (
	fooClass = TypeOf[*foo]()
	barClass = TypeOf[*bar]()
	bazClass = TypeOf[*baz]()
)

type randomID struct {
	name string
	id   string
}

func randomIDs() []randomID {
	word := faker.Lorem().Word()
	sentence := faker.Lorem().Sentence(5)
	composite := fake.FirstName() + ":" + fake.LastName()
	return []randomID{
		{"uuid", uuid.NewString()},
		{"ulid", ulid.Make().String()},
		{"small number", faker.Number().Between(0, 100)},
		{"big number", strconv.FormatInt(faker.Number().NumberInt64(18), 10)},
		{"negative number", "-" + faker.Number().Between(1, 1<<30)},
		{"word", word},
		{"sentence", sentence},
		{"composite name", composite},
	}
}
