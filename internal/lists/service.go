package lists

import (
	"context"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"github.com/lueurxax/singlell/internal/log"
	redisRepo "github.com/lueurxax/singlell/internal/repo/redis"
	"github.com/lueurxax/singlell/pkg/singlell"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// BeforeBegin is the index addressing the position in front of the first
// element.
const BeforeBegin = -1

const nameKey = "name"

// Service keeps named string lists and serializes every access to them.
type Service interface {
	Names() []string
	Sizes() map[string]int
	Get(name string) ([]string, error)
	Size(name string) (int, error)
	Create(name string, values []string) error
	Delete(name string) error
	PushFront(name, value string) error
	PopFront(name string) (string, error)
	InsertAfter(name string, index int, value string) error
	EraseAfter(name string, index int) (string, error)
	Clear(name string) error
	Swap(a, b string) error
	Copy(src, dst string) error
	Compare(a, b string) (int, error)
	Save(ctx context.Context, name string) error
	Load(ctx context.Context, name string) error
	DeleteSnapshot(ctx context.Context, name string) error
	Snapshots(ctx context.Context) ([]string, error)
}

type repo interface {
	SaveList(ctx context.Context, name string, list *singlell.List[string]) error
	GetList(ctx context.Context, name string) (*singlell.List[string], error)
	DeleteList(ctx context.Context, name string) error
	ListNames(ctx context.Context) ([]string, error)
}

type service struct {
	repo

	mu    sync.Mutex
	lists map[string]*singlell.List[string]

	log log.Logger
}

func (s *service) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.lists))
	for name := range s.lists {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (s *service) Sizes() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	sizes := make(map[string]int, len(s.lists))
	for name, l := range s.lists {
		sizes[name] = l.GetSize()
	}

	return sizes
}

func (s *service) Get(name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(name)
	if err != nil {
		return nil, err
	}

	return l.Values(), nil
}

func (s *service) Size(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(name)
	if err != nil {
		return 0, err
	}

	return l.GetSize(), nil
}

func (s *service) Create(name string, values []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[name]; ok {
		return errors.Wrap(ErrExists, name)
	}

	s.lists[name] = singlell.From(values...)
	s.log.WithField(nameKey, name).WithField("size", len(values)).Debug("list created")

	return nil
}

func (s *service) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(name)
	if err != nil {
		return err
	}

	l.Clear()
	delete(s.lists, name)
	s.log.WithField(nameKey, name).Debug("list deleted")

	return nil
}

func (s *service) PushFront(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(name)
	if err != nil {
		return err
	}

	l.PushFront(value)

	return nil
}

func (s *service) PopFront(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(name)
	if err != nil {
		return "", err
	}

	if l.IsEmpty() {
		return "", errors.Wrap(ErrEmpty, name)
	}

	value := l.Begin().Value()
	l.PopFront()

	return value, nil
}

func (s *service) InsertAfter(name string, index int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(name)
	if err != nil {
		return err
	}

	pos, err := position(l, index)
	if err != nil {
		return err
	}

	l.InsertAfter(pos, value)

	return nil
}

func (s *service) EraseAfter(name string, index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(name)
	if err != nil {
		return "", err
	}

	pos, err := position(l, index)
	if err != nil {
		return "", err
	}

	value, ok := pos.Next().Lookup()
	if !ok {
		return "", errors.Wrapf(ErrOutOfRange, "no element after %d", index)
	}

	l.EraseAfter(pos)

	return value, nil
}

func (s *service) Clear(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.list(name)
	if err != nil {
		return err
	}

	l.Clear()

	return nil
}

func (s *service) Swap(a, b string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	la, err := s.list(a)
	if err != nil {
		return err
	}

	lb, err := s.list(b)
	if err != nil {
		return err
	}

	singlell.Swap(la, lb)

	return nil
}

// Copy replaces dst with a copy of src, creating dst when it is missing.
func (s *service) Copy(src, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.list(src)
	if err != nil {
		return err
	}

	to, ok := s.lists[dst]
	if !ok {
		s.lists[dst] = from.Clone()
		return nil
	}

	to.Assign(from)

	return nil
}

func (s *service) Compare(a, b string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	la, err := s.list(a)
	if err != nil {
		return 0, err
	}

	lb, err := s.list(b)
	if err != nil {
		return 0, err
	}

	return singlell.Compare(la, lb), nil
}

func (s *service) Save(ctx context.Context, name string) error {
	s.mu.Lock()
	l, err := s.list(name)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	snapshot := l.Clone()
	s.mu.Unlock()

	if err = s.repo.SaveList(ctx, name, snapshot); err != nil {
		return errors.Wrapf(err, "save %q", name)
	}

	s.log.WithField(nameKey, name).WithField("size", snapshot.GetSize()).Info("list saved")

	return nil
}

// Load replaces the in-memory list with the stored snapshot. The current
// contents are kept if the snapshot cannot be read.
func (s *service) Load(ctx context.Context, name string) error {
	loaded, err := s.repo.GetList(ctx, name)
	if err != nil {
		return errors.Wrapf(snapshotError(err, name), "load %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.lists[name]; ok {
		l.Swap(loaded)
		loaded.Clear()
	} else {
		s.lists[name] = loaded
	}

	s.log.WithField(nameKey, name).WithField("size", s.lists[name].GetSize()).Info("list loaded")

	return nil
}

func (s *service) DeleteSnapshot(ctx context.Context, name string) error {
	if err := s.repo.DeleteList(ctx, name); err != nil {
		return errors.Wrapf(snapshotError(err, name), "delete snapshot %q", name)
	}

	s.log.WithField(nameKey, name).Info("snapshot deleted")

	return nil
}

// Snapshots returns the names of every stored list, sorted.
func (s *service) Snapshots(ctx context.Context) ([]string, error) {
	names, err := s.repo.ListNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list snapshots")
	}

	slices.Sort(names)

	return names, nil
}

// snapshotError turns the storage not-found error into ErrNoSnapshot.
func snapshotError(err error, name string) error {
	if errors.Is(err, redisRepo.ErrNotFound) {
		return errors.Wrap(ErrNoSnapshot, name)
	}

	return err
}

func (s *service) list(name string) (*singlell.List[string], error) {
	l, ok := s.lists[name]
	if !ok {
		return nil, errors.Wrap(ErrNotFound, name)
	}

	return l, nil
}

// position walks to the element at index, BeforeBegin giving the sentinel.
func position(l *singlell.List[string], index int) (singlell.Iterator[string], error) {
	if index < BeforeBegin || index >= l.GetSize() {
		return singlell.Iterator[string]{}, errors.Wrapf(ErrOutOfRange, "index %d, size %d", index, l.GetSize())
	}

	it := l.BeforeBegin()
	for i := BeforeBegin; i < index; i++ {
		it.Advance()
	}

	return it, nil
}

func NewService(repo repo, logger log.Logger) Service {
	return &service{
		repo:  repo,
		lists: make(map[string]*singlell.List[string]),
		log:   logger,
	}
}
