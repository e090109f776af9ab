// Package timetable turns university exam data into a bandwidth coloring
// instance and reads a coloring back as an exam schedule.
//
// Exams taken by a common student conflict. A conflicting pair must sit at
// least min(cost(a), cost(b)) slots apart, where easy, medium and hard exams
// cost 1, 2 and 3. Slots are numbered from 1; six two-hour slots from 08:00
// make up one day.
package timetable
