package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dialdesk/internal/accounts"
	"dialdesk/internal/attendance"
	"dialdesk/internal/calls"
	"dialdesk/internal/contacts"
	"dialdesk/internal/importer"
	"dialdesk/internal/lists"
	"dialdesk/internal/members"
	"dialdesk/internal/reporting"
	"dialdesk/internal/teams"
)

type apiDeps struct {
	AuthMW gin.HandlerFunc

	Accounts   accounts.Handlers
	Teams      teams.Handlers
	Members    members.Handlers
	Contacts   contacts.Handlers
	Lists      lists.Handlers
	Importer   importer.Handlers
	Calls      calls.Handlers
	Attendance attendance.Handlers
	Reports    reporting.Handlers
}

// registerRoutes wires HTTP routes to handlers. Route names and the
// placement of the bearer middleware match the dashboard and mobile app
// clients, so keep them stable (including the fectAllCallResponses spelling).
func registerRoutes(r *gin.Engine, d apiDeps) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", d.Accounts.Register)
		authGroup.POST("/login", d.Accounts.Login)
		authGroup.PUT("/profile", d.AuthMW, d.Accounts.UpdateProfile)
		authGroup.PUT("/change-password", d.AuthMW, d.Accounts.ChangePassword)
		authGroup.POST("/forgot-password", d.Accounts.ForgotPassword)
		authGroup.POST("/verify-otp", d.Accounts.VerifyOTP)
		authGroup.POST("/reset-password", d.Accounts.ResetPassword)
	}

	contactGroup := r.Group("/api/contacts")
	{
		contactGroup.POST("/addContact", d.AuthMW, d.Contacts.CreateContact)
		contactGroup.POST("/addContacts-csv", d.AuthMW, d.Importer.UploadContacts)
		contactGroup.GET("/fetchAllContacts", d.Contacts.FetchAllContacts)
		contactGroup.GET("/fetchAllListContacts", d.Contacts.FetchAllListContacts)
		contactGroup.GET("/exportContactsByList/:id", d.Contacts.ExportContactsByList)
		contactGroup.GET("/exportAllContacts", d.Contacts.ExportAllContacts)
		contactGroup.POST("/assignContactsFromList", d.AuthMW, d.Lists.AssignContactsFromList)
		contactGroup.PUT("/removeAssignmentFromList", d.AuthMW, d.Lists.RemoveAssignmentFromList)
	}

	listGroup := r.Group("/api/lists")
	{
		listGroup.POST("/addList", d.AuthMW, d.Lists.CreateList)
		listGroup.GET("/fetchAllList", d.Lists.FetchAllLists)
		listGroup.GET("/fetchSingleList/:id", d.Lists.FetchSingleList)
		listGroup.GET("/fetchListsByTeam", d.Lists.FetchListsByTeam)
		listGroup.PUT("/updateList/:id", d.AuthMW, d.Lists.UpdateList)
		listGroup.DELETE("/deleteList/:id", d.AuthMW, d.Lists.DeleteList)
		listGroup.DELETE("/emptyList/:id", d.AuthMW, d.Lists.EmptyList)
	}

	memberGroup := r.Group("/api/member")
	{
		memberGroup.POST("/addMember", d.AuthMW, d.Members.AddMember)
		memberGroup.GET("/fetchAllMembers", d.Members.FetchAllMembers)
		memberGroup.PUT("/changePassword", d.AuthMW, d.Members.ChangePassword)
		memberGroup.DELETE("/deleteMember/:userId", d.AuthMW, d.Members.DeleteMember)
		memberGroup.DELETE("/deleteAllMembers", d.AuthMW, d.Members.DeleteAllMembers)
		memberGroup.PUT("/updateMember/:memberId", d.AuthMW, d.Members.UpdateMember)
		memberGroup.GET("/exportMembers", d.Members.ExportMembers)
		memberGroup.GET("/fetchListsByMember/:memberId", d.Members.FetchListsByMember)
		memberGroup.GET("/fetchAllMembersInTeam", d.Members.FetchAllMembersInTeam)
		memberGroup.POST("/updateLoginStatus", d.Members.UpdateLoginStatus)
	}

	teamGroup := r.Group("/api/team")
	{
		teamGroup.POST("/addTeam", d.AuthMW, d.Teams.AddTeam)
		teamGroup.GET("/fetchTeamsByUser", d.Teams.FetchTeamsByUser)
		teamGroup.DELETE("/deleteTeam/:teamId", d.AuthMW, d.Teams.DeleteTeam)
		teamGroup.PUT("/editTeam", d.AuthMW, d.Teams.EditTeam)
	}

	callGroup := r.Group("/api/call")
	{
		callGroup.POST("/callResponses", d.AuthMW, d.Calls.StoreCallResponse)
		callGroup.GET("/fectAllCallResponses", d.Calls.FetchAllCallResponses)
	}

	attendanceGroup := r.Group("/api/attendance")
	{
		attendanceGroup.POST("/updateMemberAttendance", d.AuthMW, d.Attendance.UpdateMemberAttendance)
		attendanceGroup.GET("/fetchMemberAttendance", d.Attendance.GetMemberAttendance)
	}

	reportGroup := r.Group("/api/reports")
	{
		reportGroup.GET("/callSummary", d.Reports.CallSummary)
	}
}
