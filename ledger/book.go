package ledger

// Book is an immutable snapshot of the ledger: every account, category,
// person, record and split, indexed by the foreign keys the aggregation
// queries traverse. It replaces lazy relationship traversal with
// pre-built lookups so the engine never reaches back into storage.
//
// A Book represents one consistent moment. Two Books built from
// sequential store reads may disagree; a single aggregation call always
// draws every sub-sum from the same Book.
type Book struct {
	accounts   map[int64]*Account
	categories map[int64]*Category
	persons    map[int64]*Person

	records []Record
	splits  []Split

	recordsByAccount map[int64][]*Record
	transfersInto    map[int64][]*Record
	splitsByRecord   map[int64][]*Split
	splitsByAccount  map[int64][]*Split
	splitsByPerson   map[int64][]*Split
	recordByID       map[int64]*Record
}

// NewBook builds a snapshot with all lookup indexes from plain entity
// rows. The slices are copied; later mutation of the arguments does not
// affect the Book.
func NewBook(accounts []Account, categories []Category, persons []Person, records []Record, splits []Split) *Book {
	b := &Book{
		accounts:         make(map[int64]*Account, len(accounts)),
		categories:       make(map[int64]*Category, len(categories)),
		persons:          make(map[int64]*Person, len(persons)),
		records:          append([]Record(nil), records...),
		splits:           append([]Split(nil), splits...),
		recordsByAccount: make(map[int64][]*Record),
		transfersInto:    make(map[int64][]*Record),
		splitsByRecord:   make(map[int64][]*Split),
		splitsByAccount:  make(map[int64][]*Split),
		splitsByPerson:   make(map[int64][]*Split),
		recordByID:       make(map[int64]*Record, len(records)),
	}

	accounts = append([]Account(nil), accounts...)
	for i := range accounts {
		b.accounts[accounts[i].ID] = &accounts[i]
	}
	categories = append([]Category(nil), categories...)
	for i := range categories {
		b.categories[categories[i].ID] = &categories[i]
	}
	persons = append([]Person(nil), persons...)
	for i := range persons {
		b.persons[persons[i].ID] = &persons[i]
	}

	for i := range b.records {
		r := &b.records[i]
		b.recordByID[r.ID] = r
		b.recordsByAccount[r.AccountID] = append(b.recordsByAccount[r.AccountID], r)
		if r.IsTransfer && r.TransferTo != nil {
			b.transfersInto[*r.TransferTo] = append(b.transfersInto[*r.TransferTo], r)
		}
	}

	for i := range b.splits {
		s := &b.splits[i]
		b.splitsByRecord[s.RecordID] = append(b.splitsByRecord[s.RecordID], s)
		b.splitsByPerson[s.PersonID] = append(b.splitsByPerson[s.PersonID], s)
		if s.AccountID != nil {
			b.splitsByAccount[*s.AccountID] = append(b.splitsByAccount[*s.AccountID], s)
		}
	}

	return b
}

// Account returns an account by id.
func (b *Book) Account(id int64) (*Account, bool) {
	a, ok := b.accounts[id]
	return a, ok
}

// Category returns a category by id.
func (b *Book) Category(id int64) (*Category, bool) {
	c, ok := b.categories[id]
	return c, ok
}

// Person returns a person by id.
func (b *Book) Person(id int64) (*Person, bool) {
	p, ok := b.persons[id]
	return p, ok
}

// Record returns a record by id.
func (b *Book) Record(id int64) (*Record, bool) {
	r, ok := b.recordByID[id]
	return r, ok
}

// Records returns every record in the snapshot.
func (b *Book) Records() []Record {
	return b.records
}

// Splits returns every split in the snapshot.
func (b *Book) Splits() []Split {
	return b.splits
}

// RecordSplits returns the splits belonging to a record.
func (b *Book) RecordSplits(recordID int64) []*Split {
	return b.splitsByRecord[recordID]
}

// PersonSplits returns the splits attributed to a person.
func (b *Book) PersonSplits(personID int64) []*Split {
	return b.splitsByPerson[personID]
}
