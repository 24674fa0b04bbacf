package models

import (
	"gorm.io/datatypes"
)

// JSON column types for the list-valued fields of the document model.
// datatypes maps each column to the native JSON type of the configured
// dialect (JSON on MySQL/SQLite, JSONB on Postgres, NVARCHAR(MAX) on
// SQL Server), so the same models migrate everywhere.

// RelationList is a product's ordered list of sellable lines.
type RelationList = datatypes.JSONSlice[ProductRelation]

// MemberList is an entry's embedded list of participating members.
type MemberList = datatypes.JSONSlice[PurchaseMember]
