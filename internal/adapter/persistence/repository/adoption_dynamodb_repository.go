package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"abrigo_xpto/internal/domain/entities"
	"abrigo_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAdoptionsTableName = "adoption_applications"
	adoptionsPetIDIndex       = "pet_id-index"
	adoptionsApplicantIDIndex = "applicant_id-index"
)

type adoptionItem struct {
	ID          string `dynamodbav:"id"`
	PetID       string `dynamodbav:"pet_id"`
	ApplicantID string `dynamodbav:"applicant_id"`
	SubmittedAt string `dynamodbav:"submitted_at"`
	Status      string `dynamodbav:"status"`

	HouseholdRaw string                 `dynamodbav:"household_raw,omitempty"`
	Household    map[string]interface{} `dynamodbav:"household,omitempty"`

	VisitDate string `dynamodbav:"visit_date,omitempty"`
	VisitTime string `dynamodbav:"visit_time,omitempty"`

	CompliedPapers        bool   `dynamodbav:"complied_papers"`
	CompliedPapersAt      string `dynamodbav:"complied_papers_at,omitempty"`
	HomeVisitSuccessful   bool   `dynamodbav:"home_visit_successful"`
	HomeVisitSuccessfulAt string `dynamodbav:"home_visit_successful_at,omitempty"`

	ReasonKind   string `dynamodbav:"reason_kind,omitempty"`
	ReasonDetail string `dynamodbav:"reason_detail,omitempty"`

	UpdatedAt string `dynamodbav:"updated_at"`
	Version   int64  `dynamodbav:"version"`
}

// AdoptionDynamoRepository persists AdoptionApplication entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: pet_id-index (PK: pet_id)
//   - GSI: applicant_id-index (PK: applicant_id)
//
// Save is a compare-and-swap: the whole item is rewritten conditionally on
// the version the caller read, so a lost race surfaces as a miss instead of
// interleaved attribute updates.

type AdoptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAdoptionRepository = (*AdoptionDynamoRepository)(nil)

func NewAdoptionDynamoRepository(ddb *dynamodb.Client) *AdoptionDynamoRepository {
	return &AdoptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADOPTIONS_TABLE", defaultAdoptionsTableName),
	}
}

func (r *AdoptionDynamoRepository) Create(ctx context.Context, app entities.AdoptionApplication) (entities.AdoptionApplication, error) {
	it := toAdoptionItem(app)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AdoptionApplication{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.AdoptionApplication{}, err
	}
	return app, nil
}

func (r *AdoptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.AdoptionApplication, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AdoptionApplication{}, err
	}
	if len(out.Item) == 0 {
		return entities.AdoptionApplication{}, nil
	}

	var it adoptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AdoptionApplication{}, err
	}
	return fromAdoptionItem(it), nil
}

func (r *AdoptionDynamoRepository) Save(ctx context.Context, app entities.AdoptionApplication, expectedVersion int64) (entities.AdoptionApplication, error) {
	it := toAdoptionItem(app)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AdoptionApplication{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: int64ToString(expectedVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.AdoptionApplication{}, nil
		}
		return entities.AdoptionApplication{}, err
	}
	return app, nil
}

func (r *AdoptionDynamoRepository) ListByPetID(ctx context.Context, petID string) ([]entities.AdoptionApplication, error) {
	return r.queryIndex(ctx, adoptionsPetIDIndex, "pet_id = :v", petID)
}

func (r *AdoptionDynamoRepository) ListByApplicantID(ctx context.Context, applicantID string) ([]entities.AdoptionApplication, error) {
	return r.queryIndex(ctx, adoptionsApplicantIDIndex, "applicant_id = :v", applicantID)
}

func (r *AdoptionDynamoRepository) queryIndex(ctx context.Context, index, keyCondition, value string) ([]entities.AdoptionApplication, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.AdoptionApplication, 0, len(out.Items))
	for _, raw := range out.Items {
		var it adoptionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAdoptionItem(it))
	}
	return items, nil
}

func toAdoptionItem(app entities.AdoptionApplication) adoptionItem {
	it := adoptionItem{
		ID:           app.ID,
		PetID:        app.PetID,
		ApplicantID:  app.ApplicantID,
		SubmittedAt:  app.SubmittedAt.UTC().Format(time.RFC3339Nano),
		Status:       string(app.Status),
		HouseholdRaw: string(app.HouseholdRaw),
		Household:    app.Household,
		UpdatedAt:    app.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Version:      app.Version,
	}
	if app.Visit != nil {
		it.VisitDate = app.Visit.Date
		it.VisitTime = app.Visit.Time
	}
	it.CompliedPapers = app.Checklist.CompliedPapers.IsChecked
	if at := app.Checklist.CompliedPapers.CheckedAt; at != nil {
		it.CompliedPapersAt = at.UTC().Format(time.RFC3339Nano)
	}
	it.HomeVisitSuccessful = app.Checklist.HomeVisitSuccessful.IsChecked
	if at := app.Checklist.HomeVisitSuccessful.CheckedAt; at != nil {
		it.HomeVisitSuccessfulAt = at.UTC().Format(time.RFC3339Nano)
	}
	if app.TerminationReason != nil {
		it.ReasonKind = app.TerminationReason.Kind
		it.ReasonDetail = app.TerminationReason.Detail
	}
	return it
}

func fromAdoptionItem(it adoptionItem) entities.AdoptionApplication {
	submittedAt, _ := time.Parse(time.RFC3339Nano, it.SubmittedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	app := entities.AdoptionApplication{
		ID:          it.ID,
		PetID:       it.PetID,
		ApplicantID: it.ApplicantID,
		SubmittedAt: submittedAt,
		Status:      entities.ApplicationStatus(it.Status),
		Household:   it.Household,
		UpdatedAt:   updatedAt,
		Version:     it.Version,
	}
	if it.HouseholdRaw != "" {
		app.HouseholdRaw = json.RawMessage(it.HouseholdRaw)
	}
	if it.VisitDate != "" || it.VisitTime != "" {
		app.Visit = &entities.Visit{Date: it.VisitDate, Time: it.VisitTime}
	}
	app.Checklist.CompliedPapers = checklistItemFrom(it.CompliedPapers, it.CompliedPapersAt)
	app.Checklist.HomeVisitSuccessful = checklistItemFrom(it.HomeVisitSuccessful, it.HomeVisitSuccessfulAt)
	if it.ReasonKind != "" {
		app.TerminationReason = &entities.TerminationReason{Kind: it.ReasonKind, Detail: it.ReasonDetail}
	}
	return app
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func checklistItemFrom(checked bool, at string) entities.ChecklistItem {
	item := entities.ChecklistItem{IsChecked: checked}
	if at != "" {
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			item.CheckedAt = &t
		}
	}
	return item
}
