package forum

import "github.com/jackyeh168/qa_forum/src/internal/domain/shared"

// ===========================
// 問題附件
// ===========================

// QuestionAttachment 問題與已上傳附件的關聯
type QuestionAttachment struct {
	shared.Entity[QuestionAttachmentMarker]
	questionID   QuestionID
	attachmentID AttachmentID
}

// NewQuestionAttachment 創建新的問題附件關聯
func NewQuestionAttachment(questionID QuestionID, attachmentID AttachmentID) *QuestionAttachment {
	return &QuestionAttachment{
		Entity:       shared.NewEntity(QuestionAttachmentID{}),
		questionID:   questionID,
		attachmentID: attachmentID,
	}
}

// ReconstructQuestionAttachment 從資料庫重建關聯
func ReconstructQuestionAttachment(id QuestionAttachmentID, questionID QuestionID, attachmentID AttachmentID) *QuestionAttachment {
	return &QuestionAttachment{
		Entity:       shared.NewEntity(id),
		questionID:   questionID,
		attachmentID: attachmentID,
	}
}

func (a *QuestionAttachment) QuestionID() QuestionID     { return a.questionID }
func (a *QuestionAttachment) AttachmentID() AttachmentID { return a.attachmentID }

// QuestionAttachmentList 問題附件的 WatchedList（依附件 ID 比較）
type QuestionAttachmentList struct {
	*shared.WatchedList[*QuestionAttachment]
}

// NewQuestionAttachmentList 以載入的附件為基準建立清單
func NewQuestionAttachmentList(initial []*QuestionAttachment) *QuestionAttachmentList {
	return &QuestionAttachmentList{
		WatchedList: shared.NewWatchedList(initial, func(a, b *QuestionAttachment) bool {
			return a.attachmentID.Equals(b.attachmentID)
		}),
	}
}

// Replace 以附件 ID 集合重算目前項目
//
// 已存在的關聯列沿用原物件，其餘建立新關聯；差異仍相對載入基準計算。
func (l *QuestionAttachmentList) Replace(questionID QuestionID, attachmentIDs []AttachmentID) {
	existing := l.GetItems()
	items := make([]*QuestionAttachment, 0, len(attachmentIDs))
	for _, id := range attachmentIDs {
		item := NewQuestionAttachment(questionID, id)
		for _, e := range existing {
			if e.attachmentID.Equals(id) {
				item = e
				break
			}
		}
		items = append(items, item)
	}
	l.Update(items)
}

// NewQuestionAttachments 為問題建立一批附件關聯
func NewQuestionAttachments(questionID QuestionID, attachmentIDs []AttachmentID) []*QuestionAttachment {
	attachments := make([]*QuestionAttachment, 0, len(attachmentIDs))
	for _, id := range attachmentIDs {
		attachments = append(attachments, NewQuestionAttachment(questionID, id))
	}
	return attachments
}

// ===========================
// 回答附件
// ===========================

// AnswerAttachment 回答與已上傳附件的關聯
type AnswerAttachment struct {
	shared.Entity[AnswerAttachmentMarker]
	answerID     AnswerID
	attachmentID AttachmentID
}

// NewAnswerAttachment 創建新的回答附件關聯
func NewAnswerAttachment(answerID AnswerID, attachmentID AttachmentID) *AnswerAttachment {
	return &AnswerAttachment{
		Entity:       shared.NewEntity(AnswerAttachmentID{}),
		answerID:     answerID,
		attachmentID: attachmentID,
	}
}

// ReconstructAnswerAttachment 從資料庫重建關聯
func ReconstructAnswerAttachment(id AnswerAttachmentID, answerID AnswerID, attachmentID AttachmentID) *AnswerAttachment {
	return &AnswerAttachment{
		Entity:       shared.NewEntity(id),
		answerID:     answerID,
		attachmentID: attachmentID,
	}
}

func (a *AnswerAttachment) AnswerID() AnswerID         { return a.answerID }
func (a *AnswerAttachment) AttachmentID() AttachmentID { return a.attachmentID }

// AnswerAttachmentList 回答附件的 WatchedList（依附件 ID 比較）
type AnswerAttachmentList struct {
	*shared.WatchedList[*AnswerAttachment]
}

// NewAnswerAttachmentList 以載入的附件為基準建立清單
func NewAnswerAttachmentList(initial []*AnswerAttachment) *AnswerAttachmentList {
	return &AnswerAttachmentList{
		WatchedList: shared.NewWatchedList(initial, func(a, b *AnswerAttachment) bool {
			return a.attachmentID.Equals(b.attachmentID)
		}),
	}
}

// Replace 以附件 ID 集合重算目前項目（同 QuestionAttachmentList.Replace）
func (l *AnswerAttachmentList) Replace(answerID AnswerID, attachmentIDs []AttachmentID) {
	existing := l.GetItems()
	items := make([]*AnswerAttachment, 0, len(attachmentIDs))
	for _, id := range attachmentIDs {
		item := NewAnswerAttachment(answerID, id)
		for _, e := range existing {
			if e.attachmentID.Equals(id) {
				item = e
				break
			}
		}
		items = append(items, item)
	}
	l.Update(items)
}

// NewAnswerAttachments 為回答建立一批附件關聯
func NewAnswerAttachments(answerID AnswerID, attachmentIDs []AttachmentID) []*AnswerAttachment {
	attachments := make([]*AnswerAttachment, 0, len(attachmentIDs))
	for _, id := range attachmentIDs {
		attachments = append(attachments, NewAnswerAttachment(answerID, id))
	}
	return attachments
}
