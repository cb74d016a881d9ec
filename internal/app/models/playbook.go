package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Playbook struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category"`
	Content     PlaybookContent    `bson:"content"`
	TimeModel   `bson:",inline"`
}

type PlaybookContent struct {
	Steps []PlaybookStep `bson:"steps"`
}

type PlaybookStep struct {
	Title   string `bson:"title"`
	Content string `bson:"content"`
}
