package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/contacts/internal/adapters/repository"
	"github.com/okian/contacts/internal/domain/model"
	"github.com/okian/contacts/internal/domain/usecase"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockRepo struct {
	contacts  []model.Contact
	findErr   error
	createErr error
	findCalls int
	created   []model.Contact
}

func (m *mockRepo) FindAll(ctx context.Context) ([]model.Contact, error) {
	m.findCalls++
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.contacts, nil
}

func (m *mockRepo) Create(ctx context.Context, c model.Contact) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, c)
	return nil
}

func TestGetAllContacts_Execute(t *testing.T) {
	Convey("Given a get-all-contacts use case", t, func() {
		ctx := context.Background()

		Convey("When the repository returns contacts", func() {
			repo := &mockRepo{contacts: []model.Contact{
				{ID: "2", Email: "b@email.com", FirstName: "Bea", Pseudo: "B"},
				{ID: "1", Email: "jdoe@email.com", FirstName: "John", Pseudo: "Doe"},
			}}
			uc := usecase.NewGetAllContacts(repo)

			got, err := uc.Execute(ctx)

			Convey("Then they should be returned unchanged and in order", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, repo.contacts)
				So(repo.findCalls, ShouldEqual, 1)
			})
		})

		Convey("When the repository returns nil", func() {
			uc := usecase.NewGetAllContacts(&mockRepo{})

			got, err := uc.Execute(ctx)

			Convey("Then an empty non-nil slice should be returned", func() {
				So(err, ShouldBeNil)
				So(got, ShouldNotBeNil)
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When the repository fails", func() {
			cause := errors.New("connection refused")
			uc := usecase.NewGetAllContacts(&mockRepo{findErr: cause})

			got, err := uc.Execute(ctx)

			Convey("Then the error should be wrapped with the operation", func() {
				So(got, ShouldBeNil)
				So(errors.Is(err, cause), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "usecase.get_all_contacts")
			})
		})

		Convey("When no repository is configured", func() {
			uc := usecase.NewGetAllContacts(nil)

			_, err := uc.Execute(ctx)

			So(errors.Is(err, usecase.ErrNoRepository), ShouldBeTrue)
		})
	})
}

func TestCreateContact_Execute(t *testing.T) {
	Convey("Given a create-contact use case", t, func() {
		ctx := context.Background()
		input := model.Contact{ID: "1", Email: "jdoe@email.com", FirstName: "John", Pseudo: "Doe"}

		Convey("When creating a complete contact", func() {
			repo := &mockRepo{}
			uc := usecase.NewCreateContact(repo)

			ok, err := uc.Execute(ctx, input)

			Convey("Then it should be stored as-is", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(repo.created, ShouldResemble, []model.Contact{input})
			})
		})

		Convey("When creating a contact without an id", func() {
			repo := &mockRepo{}
			uc := usecase.NewCreateContact(repo, usecase.WithIDGenerator(func() string { return "generated" }))

			ok, err := uc.Execute(ctx, model.Contact{Email: "anon@email.com"})

			Convey("Then the generator should fill it", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(repo.created[0].ID, ShouldEqual, "generated")
			})
		})

		Convey("When creating a contact without an id using the default generator", func() {
			repo := &mockRepo{}
			uc := usecase.NewCreateContact(repo)

			_, err := uc.Execute(ctx, model.Contact{Email: "anon@email.com"})

			Convey("Then a UUID should be assigned", func() {
				So(err, ShouldBeNil)
				So(repo.created[0].ID, ShouldHaveLength, 36)
			})
		})

		Convey("When id generation is disabled and the id is empty", func() {
			repo := &mockRepo{}
			uc := usecase.NewCreateContact(repo, usecase.WithIDGenerator(nil))

			ok, err := uc.Execute(ctx, model.Contact{Email: "anon@email.com"})

			Convey("Then the contact should be rejected", func() {
				So(ok, ShouldBeFalse)
				So(errors.Is(err, usecase.ErrEmptyID), ShouldBeTrue)
				So(repo.created, ShouldBeEmpty)
			})
		})

		Convey("When sanitizing is enabled", func() {
			repo := &mockRepo{}
			uc := usecase.NewCreateContact(repo, usecase.WithSanitizer(usecase.NewStrictSanitizer()))

			Convey("Then plain text with entities and comparisons should be stored unchanged", func() {
				c := model.Contact{ID: " <id> ", Email: " jdoe@email.com ", FirstName: "Tom & Jerry", Pseudo: "x>y"}
				ok, err := uc.Execute(ctx, c)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(repo.created, ShouldResemble, []model.Contact{c})
			})

			Convey("Then an email with an angle-bracket address should be rejected", func() {
				ok, err := uc.Execute(ctx, model.Contact{ID: "1", Email: "John <jdoe@email.com>"})
				So(ok, ShouldBeFalse)
				So(errors.Is(err, usecase.ErrUnsafeContent), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "email")
				So(repo.created, ShouldBeEmpty)
			})

			Convey("Then markup in a name should be rejected", func() {
				_, err := uc.Execute(ctx, model.Contact{ID: "1", FirstName: "<b>John</b>"})
				So(errors.Is(err, usecase.ErrUnsafeContent), ShouldBeTrue)

				_, err = uc.Execute(ctx, model.Contact{ID: "1", FirstName: "a<b"})
				So(errors.Is(err, usecase.ErrUnsafeContent), ShouldBeTrue)
				So(repo.created, ShouldBeEmpty)
			})
		})

		Convey("When the repository reports a duplicate", func() {
			uc := usecase.NewCreateContact(&mockRepo{createErr: repository.ErrAlreadyExists})

			ok, err := uc.Execute(ctx, input)

			Convey("Then the error should propagate", func() {
				So(ok, ShouldBeFalse)
				So(errors.Is(err, repository.ErrAlreadyExists), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "usecase.create_contact")
			})
		})

		Convey("When running against the memory store", func() {
			store := repository.NewMemoryStore()
			create := usecase.NewCreateContact(store)
			list := usecase.NewGetAllContacts(store)

			_, err1 := create.Execute(ctx, input)
			_, err2 := create.Execute(ctx, model.Contact{ID: "2", FirstName: "Ada"})
			all, err3 := list.Execute(ctx)

			Convey("Then created contacts should be listed in order", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(err3, ShouldBeNil)
				So(all, ShouldHaveLength, 2)
				So(all[0], ShouldResemble, input)
				So(all[1].FirstName, ShouldEqual, "Ada")
			})
		})

		Convey("When no repository is configured", func() {
			uc := usecase.NewCreateContact(nil)

			ok, err := uc.Execute(ctx, input)

			So(ok, ShouldBeFalse)
			So(errors.Is(err, usecase.ErrNoRepository), ShouldBeTrue)
		})
	})
}
