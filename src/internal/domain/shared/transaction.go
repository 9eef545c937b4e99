package shared

// TransactionContext 事務上下文介面
//
// 設計決策：可選事務參與模式（Optional Transaction Participation）
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（適用於單一讀操作）
//
// 使用場景：
//
// 1. 寫操作：多筆寫入在事務中（通過 TransactionManager.InTransaction）
//    - 保證原子性（Atomicity）
//    - 支援回滾（Rollback on error）
//    - 例如：建立問題與附件、編輯回答、刪除問題連同附件
//
// 2. 讀操作：可選事務參與
//    - 獨立查詢：傳入 nil（性能優先，auto-commit 模式）
//    - 在事務中讀取：傳入調用者的 ctx（保證一致性）
//    - 例如：列出最新問題（獨立）vs 事件處理器查找相關問題（在事務中）
//
// Repository 方法約束指南：
//
// 寫操作（Create / Save / Delete）：
//    - 多筆寫入的用例在事務中呼叫，確保聚合與子集合一起提交或回滾
//    - 單筆寫入可傳 nil（auto-commit）
//    - 寫入成功後 Repository 以同一個 ctx 派發領域事件，
//      訂閱者的寫入因此與觸發它的寫入屬於同一事務
//
// 讀操作（FindByID / FindBySlug / FindMany...）：ctx 可為 nil
//
// 範例：
//
// 寫操作（必須在事務中）：
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       question, _ := questionRepo.FindByID(ctx, questionID)
//       question.SetContent(content)
//       return questionRepo.Save(ctx, question)  // ctx != nil
//   })
//
// 讀操作（獨立查詢，不需要事務）：
//   questions, _ := questionRepo.FindManyRecent(nil, params)  // ctx == nil, auto-commit
//
// 讀操作（在事務中，保證一致性）：
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       answer, _ := answerRepo.FindByID(ctx, answerID)             // ctx != nil
//       question, _ := questionRepo.FindByID(ctx, answer.QuestionID()) // ctx != nil
//       // 兩次查詢在同一事務中，保證一致性
//       return chooseBestAnswer(question, answer)
//   })
//
// 架構原則：
// - 這是一個標記介面（Marker Interface），不暴露任何方法
// - Infrastructure Layer 負責實作具體的事務封裝（如 GORM, SQL）
// - Domain Layer 和 Application Layer 只依賴此介面，不依賴具體實作
// - 保持依賴方向：Infrastructure → Domain（依賴倒置原則）
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
