package test

import (
	"github.com/tidepool-org/roster/patients"
	"github.com/tidepool-org/roster/test"
)

var (
	priorities = []string{string(patients.PriorityHigh), string(patients.PriorityMedium), string(patients.PriorityLow)}
	statuses   = []string{string(patients.StatusActive), string(patients.StatusArchived)}
	groups     = []string{"Cardiology", "Endocrinology", "Behavioral Health", "Primary Care"}
)

func RandomPatient() patients.Patient {
	return patients.Patient{
		Id:        test.Faker.UUID().V4(),
		Name:      test.Faker.Person().Name(),
		Group:     test.Faker.RandomStringElement(groups),
		Coach:     test.Faker.Person().Name(),
		Therapist: test.Faker.Person().Name(),
		Totals:    RandomTotals(),
		Status:    patients.Status(test.Faker.RandomStringElement(statuses)),
		Tags:      RandomTags(test.Faker.IntBetween(0, 3)),
	}
}

func RandomPatients(count int) []patients.Patient {
	list := make([]patients.Patient, count)
	for i := range list {
		list[i] = RandomPatient()
	}
	return list
}

func RandomTotals() patients.Totals {
	return patients.Totals{
		CCM:    test.Faker.IntBetween(0, 90),
		PCM:    test.Faker.IntBetween(0, 90),
		RPM:    test.Faker.IntBetween(0, 31),
		Active: test.Faker.IntBetween(0, 150),
	}
}

func RandomTag() patients.Tag {
	return patients.Tag{
		Name:     test.Faker.Lorem().Word(),
		Priority: patients.Priority(test.Faker.RandomStringElement(priorities)),
	}
}

func RandomTags(count int) []patients.Tag {
	tags := make([]patients.Tag, count)
	for i := range tags {
		tags[i] = RandomTag()
	}
	return tags
}
