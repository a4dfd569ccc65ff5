package model

// Package model defines domain data structures used across the app: prayer
// schedules, derived countdown state, daily content records, and fetch status
// enums. Structures are designed for direct rendering in the UI and explicit
// state transitions.
