package logger

const MatchCreatedMsg = "比賽 %s 建立，發球速度 dx=%.2f dy=%.2f"
const StateChangedMsg = "比賽 %s 切換到 %s 狀態"
const PointScoredMsg = "比賽 %s 球從 %s 邊出界！比分 %d:%d"

const FrontendStartMsg = "比賽 %s 使用 %s 介面開始"
const FrontendStopMsg = "比賽 %s 結束，最終比分 %d:%d"
const ScreenResizeMsg = "畫面大小改變：%dx%d"
const FrameTraceMsg = "比賽 %s 幀狀態 %s"

const LevelReloadedMsg = "日誌等級已更新為 %s"
const SettingsLoadedMsg = "設定檔 %s 已載入 (frontend=%s, frame=%s)"
